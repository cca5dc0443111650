package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/google/uuid"
)

func Claims(sessionID uuid.UUID, role string) *models.Claims {
	return &models.Claims{
		SessionID:    sessionID,
		EmployeeCode: "EMP042",
		Role:         role,
		Email:        "test@example.com",
	}
}

// CreateTestRequestWithContext builds a request as the auth middleware would hand it to a
// handler: a cashier session in the claims and a silent logger.
func CreateTestRequestWithContext(method, target string, body io.Reader, sessionID uuid.UUID, pathParams map[string]string) *http.Request {
	return CreateTestRequestWithClaims(method, target, body, Claims(sessionID, "CASHIER"), pathParams)
}

func CreateTestRequestWithClaims(method, target string, body io.Reader, claims *models.Claims, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}
