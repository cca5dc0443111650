package billingapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport failures: refused connections, timeouts, unreadable bodies.
	ErrUnavailable = errors.New("billing backend unavailable")
	// ErrSessionExpired means the access token was rejected and could not be refreshed.
	// The stored tokens have already been cleared.
	ErrSessionExpired = errors.New("billing session expired")
)

// APIError is a failure the backend reported with a status code and message.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend returned status %d", e.Endpoint, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s (status %d)", e.Endpoint, e.Message, e.StatusCode)
}
