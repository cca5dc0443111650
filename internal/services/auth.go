package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/errors"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	repository "github.com/aaravmahajanofficial/hypermart-pos/internal/repositories"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/terminal"
	"github.com/aaravmahajanofficial/hypermart-pos/pkg/billingapi"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Authenticator is the part of the billing backend that handles staff credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, employeeCode, password string) (*models.Tokens, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	UpdatePassword(ctx context.Context, email, password string) error
}

type SessionStore interface {
	Save(ctx context.Context, id uuid.UUID, tokens *models.Tokens) error
	Clear(ctx context.Context, id uuid.UUID) error
}

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error
	UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error
}

type authService struct {
	backend   Authenticator
	sessions  SessionStore
	terminals *terminal.Registry
	rateLimit repository.RateLimitRepository
	jwtKey    []byte
	expiry    time.Duration
}

func NewAuthService(backend Authenticator, sessions SessionStore, terminals *terminal.Registry, rateLimit repository.RateLimitRepository, jwtKey []byte, expiry time.Duration) AuthService {
	return &authService{
		backend:   backend,
		sessions:  sessions,
		terminals: terminals,
		rateLimit: rateLimit,
		jwtKey:    jwtKey,
		expiry:    expiry,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("employeeCode", req.EmployeeCode))

	allowed, remaining, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, req.EmployeeCode)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	tokens, err := s.backend.Authenticate(ctx, req.EmployeeCode, req.Password)
	if err != nil {
		var apiErr *billingapi.APIError
		if stderrors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			logger.Warn("Backend rejected credentials", slog.Int("status", apiErr.StatusCode))
			return &models.LoginResponse{
				Success:        false,
				Message:        "Invalid employee code or password",
				RemainingTries: remaining,
			}, nil
		}

		return nil, appError(err)
	}

	sessionID := uuid.New()

	if err := s.sessions.Save(ctx, sessionID, tokens); err != nil {
		return nil, errors.ThirdPartyError("Failed to store session").WithError(err)
	}

	s.terminals.Create(sessionID, terminal.Staff{
		EmployeeCode: req.EmployeeCode,
		Email:        tokens.Email,
		Role:         tokens.Role,
	})

	if err := s.rateLimit.ResetLoginRateLimit(ctx, req.EmployeeCode); err != nil {
		logger.Warn("Failed to reset login attempts", slog.Any("error", err))
	}

	now := time.Now()
	claims := &models.Claims{
		SessionID:    sessionID,
		EmployeeCode: req.EmployeeCode,
		Role:         tokens.Role,
		Email:        tokens.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.EmployeeCode,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		s.terminals.Remove(sessionID)
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	logger.Info("Terminal session opened", slog.String("sessionId", sessionID.String()), slog.String("role", tokens.Role))

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.expiry.Seconds()),
		Role:      tokens.Role,
	}, nil
}

// Logout drops the backend tokens and the terminal state, including an unfinished bill.
func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {

	s.terminals.Remove(sessionID)

	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return errors.ThirdPartyError("Failed to clear session").WithError(err)
	}

	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	return appError(s.backend.ForgotPassword(ctx, req.Email))
}

func (s *authService) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error {
	return appError(s.backend.VerifyOTP(ctx, req.Email, req.OTP))
}

func (s *authService) UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error {
	return appError(s.backend.UpdatePassword(ctx, req.Email, req.Password))
}
