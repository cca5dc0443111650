package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrBusy              = errors.New("a payment request is already in flight")
	ErrIllegalTransition = errors.New("illegal transition of checkout status")
	ErrClosed            = errors.New("checkout session is closed")
	ErrNoGateway         = errors.New("no payment gateway configured")
)

// ValidationError is a client-side check that failed before anything was submitted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransitionError names the action and the status that refused it.
type TransitionError struct {
	Action string
	Status Status
	Method Method
}

func (e *TransitionError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("cannot %s while %s with method %s", e.Action, e.Status, e.Method)
	}

	return fmt.Sprintf("cannot %s while %s", e.Action, e.Status)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}
