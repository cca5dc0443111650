package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/errors"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils/response"
)

// sessionClaims returns the terminal session of the request and a logger tagged with it. It
// writes the 401 itself when there is none.
func sessionClaims(w http.ResponseWriter, r *http.Request) (*models.Claims, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized request: missing session claims")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, logger, false
	}

	return claims, logger.With(slog.String("sessionId", claims.SessionID.String())), true
}
