package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/health"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err   error
	calls int
}

func (s *stubPinger) Ping(context.Context) error {
	s.calls++
	return s.err
}

func TestBackendCheck(t *testing.T) {
	t.Run("Success - Backend Reachable", func(t *testing.T) {
		// Arrange
		pinger := &stubPinger{}

		// Act
		err := health.BackendCheck(pinger)(context.Background())

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 1, pinger.calls)
	})

	t.Run("Failure - Backend Down", func(t *testing.T) {
		// Arrange
		cause := errors.New("connection refused")
		pinger := &stubPinger{err: cause}

		// Act
		err := health.BackendCheck(pinger)(context.Background())

		// Assert
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Failure - No Client", func(t *testing.T) {
		// Act
		err := health.BackendCheck(nil)(context.Background())

		// Assert
		assert.Error(t, err)
	})
}
