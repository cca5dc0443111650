package service_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/hypermart-pos/internal/errors"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	repoMocks "github.com/aaravmahajanofficial/hypermart-pos/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/hypermart-pos/internal/services"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/services/mocks"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/terminal"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/billingapi"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var jwtKey = []byte("test-secret")

type authFixture struct {
	backend   *mocks.MockAuthenticator
	sessions  *mocks.MockSessionStore
	rateLimit *repoMocks.MockRateLimitRepository
	terminals *terminal.Registry
	service   service.AuthService
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	f := authFixture{
		backend:   mocks.NewMockAuthenticator(t),
		sessions:  mocks.NewMockSessionStore(t),
		rateLimit: repoMocks.NewMockRateLimitRepository(t),
		terminals: terminal.NewRegistry(),
	}
	f.service = service.NewAuthService(f.backend, f.sessions, f.terminals, f.rateLimit, jwtKey, 12*time.Hour)

	return f
}

func TestLogin(t *testing.T) {
	req := &models.LoginRequest{EmployeeCode: "EMP042", Password: "secret"}
	tokens := &models.Tokens{AccessToken: "access", RefreshToken: "refresh", Role: "CASHIER", Email: "asha@hypermart.in", UserID: "7"}

	t.Run("Success - Issues Session Token And Opens Terminal", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.rateLimit.On("CheckLoginRateLimit", mock.Anything, "EMP042").Return(true, 4, 0, nil).Once()
		f.backend.On("Authenticate", mock.Anything, "EMP042", "secret").Return(tokens, nil).Once()
		f.sessions.On("Save", mock.Anything, mock.AnythingOfType("uuid.UUID"), tokens).Return(nil).Once()
		f.rateLimit.On("ResetLoginRateLimit", mock.Anything, "EMP042").Return(nil).Once()

		// Act
		resp, err := f.service.Login(t.Context(), req)

		// Assert
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "CASHIER", resp.Role)
		assert.Equal(t, int((12 * time.Hour).Seconds()), resp.ExpiresIn)

		claims := &models.Claims{}
		_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) { return jwtKey, nil })
		require.NoError(t, err)
		assert.Equal(t, "EMP042", claims.EmployeeCode)
		assert.Equal(t, "asha@hypermart.in", claims.Email)

		term, err := f.terminals.Get(claims.SessionID)
		require.NoError(t, err, "login must open a terminal for the session")
		assert.Equal(t, "asha@hypermart.in", term.Staff().Email)
	})

	t.Run("Success - Reset Failure Does Not Block Login", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.rateLimit.On("CheckLoginRateLimit", mock.Anything, "EMP042").Return(true, 4, 0, nil).Once()
		f.backend.On("Authenticate", mock.Anything, "EMP042", "secret").Return(tokens, nil).Once()
		f.sessions.On("Save", mock.Anything, mock.Anything, tokens).Return(nil).Once()
		f.rateLimit.On("ResetLoginRateLimit", mock.Anything, "EMP042").Return(errors.New("redis down")).Once()

		// Act
		resp, err := f.service.Login(t.Context(), req)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 1, f.terminals.Len())
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.rateLimit.On("CheckLoginRateLimit", mock.Anything, "EMP042").Return(false, 0, 42, nil).Once()

		// Act
		resp, err := f.service.Login(t.Context(), req)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 42, resp.RetryAfter)
		f.backend.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate Limit Store Error", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.rateLimit.On("CheckLoginRateLimit", mock.Anything, "EMP042").Return(false, 0, 0, errors.New("redis down")).Once()

		// Act
		resp, err := f.service.Login(t.Context(), req)

		// Assert
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})

	t.Run("Failure - Invalid Credentials", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.rateLimit.On("CheckLoginRateLimit", mock.Anything, "EMP042").Return(true, 2, 0, nil).Once()
		f.backend.On("Authenticate", mock.Anything, "EMP042", "secret").
			Return(nil, &billingapi.APIError{Endpoint: "/auth/authenticate", StatusCode: http.StatusUnauthorized, Message: "Bad credentials"}).Once()

		// Act
		resp, err := f.service.Login(t.Context(), req)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 2, resp.RemainingTries)
		assert.Zero(t, f.terminals.Len())
	})

	t.Run("Failure - Backend Unavailable", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.rateLimit.On("CheckLoginRateLimit", mock.Anything, "EMP042").Return(true, 4, 0, nil).Once()
		f.backend.On("Authenticate", mock.Anything, "EMP042", "secret").
			Return(nil, fmt.Errorf("%w: connection refused", billingapi.ErrUnavailable)).Once()

		// Act
		resp, err := f.service.Login(t.Context(), req)

		// Assert
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	})

	t.Run("Failure - Session Store Error", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.rateLimit.On("CheckLoginRateLimit", mock.Anything, "EMP042").Return(true, 4, 0, nil).Once()
		f.backend.On("Authenticate", mock.Anything, "EMP042", "secret").Return(tokens, nil).Once()
		f.sessions.On("Save", mock.Anything, mock.Anything, tokens).Return(errors.New("redis down")).Once()

		// Act
		resp, err := f.service.Login(t.Context(), req)

		// Assert
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.Zero(t, f.terminals.Len(), "no terminal without stored tokens")
	})
}

func TestLogout(t *testing.T) {
	t.Run("Success - Clears Tokens And Terminal", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		sessionID := uuid.New()
		f.terminals.Create(sessionID, terminal.Staff{EmployeeCode: "EMP042"})
		f.sessions.On("Clear", mock.Anything, sessionID).Return(nil).Once()

		// Act
		err := f.service.Logout(t.Context(), sessionID)

		// Assert
		require.NoError(t, err)
		_, err = f.terminals.Get(sessionID)
		assert.ErrorIs(t, err, terminal.ErrNoTerminal)
	})

	t.Run("Failure - Store Error", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		sessionID := uuid.New()
		f.sessions.On("Clear", mock.Anything, sessionID).Return(errors.New("redis down")).Once()

		// Act
		err := f.service.Logout(t.Context(), sessionID)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})
}

func TestPasswordReset(t *testing.T) {
	t.Run("Success - Forgot Password", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.backend.On("ForgotPassword", mock.Anything, "asha@hypermart.in").Return(nil).Once()

		// Act
		err := f.service.ForgotPassword(t.Context(), &models.ForgotPasswordRequest{Email: "asha@hypermart.in"})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Failure - Wrong OTP Keeps Backend Status", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.backend.On("VerifyOTP", mock.Anything, "asha@hypermart.in", "1234").
			Return(&billingapi.APIError{Endpoint: "/auth/verifyOtp", StatusCode: http.StatusBadRequest, Message: "Invalid OTP"}).Once()

		// Act
		err := f.service.VerifyOTP(t.Context(), &models.VerifyOTPRequest{Email: "asha@hypermart.in", OTP: "1234"})

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, "Invalid OTP", appErr.Message)
	})

	t.Run("Success - Update Password", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.backend.On("UpdatePassword", mock.Anything, "asha@hypermart.in", "n3wpass").Return(nil).Once()

		// Act
		err := f.service.UpdatePassword(t.Context(), &models.UpdatePasswordRequest{Email: "asha@hypermart.in", Password: "n3wpass"})

		// Assert
		assert.NoError(t, err)
	})
}
