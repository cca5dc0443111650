package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	service "github.com/aaravmahajanofficial/hypermart-pos/internal/services"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

// Login godoc
//
//	@Summary		Staff login
//	@Description	Authenticates the employee against the billing backend and opens a terminal session. Attempts are rate limited per employee code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Employee code and password"
//	@Success		200			{object}	models.LoginResponse	"Session token"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	models.LoginResponse	"Invalid credentials"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Failure		502			{object}	response.ErrorResponse	"Billing backend unavailable"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		logger = logger.With(slog.String("employeeCode", req.EmployeeCode))

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.Int("status", status))
			response.WriteJson(w, status, resp)
			return
		}

		logger.Info("Staff logged in")
		response.Success(w, http.StatusOK, resp)
	}
}

// Logout godoc
//
//	@Summary		Staff logout
//	@Description	Clears the backend tokens and drops the terminal state, including any unfinished bill.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"Logged out"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := sessionClaims(w, r)
		if !ok {
			return
		}

		if err := h.authService.Logout(r.Context(), claims.SessionID); err != nil {
			logger.Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Staff logged out")
		w.WriteHeader(http.StatusNoContent)
	}
}

// ForgotPassword godoc
//
//	@Summary		Request a password reset OTP
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ForgotPasswordRequest	true	"Registered e-mail"
//	@Success		200		{object}	response.APIResponse			"OTP sent"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		502		{object}	response.ErrorResponse			"Billing backend unavailable"
//	@Router			/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ForgotPasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.authService.ForgotPassword(r.Context(), &req); err != nil {
			logger.Warn("Forgot password failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "OTP sent"})
	}
}

// VerifyOTP godoc
//
//	@Summary		Verify a password reset OTP
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.VerifyOTPRequest	true	"E-mail and OTP"
//	@Success		200		{object}	response.APIResponse	"OTP verified"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or wrong OTP"
//	@Router			/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.VerifyOTPRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.authService.VerifyOTP(r.Context(), &req); err != nil {
			logger.Warn("OTP verification failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "OTP verified"})
	}
}

// UpdatePassword godoc
//
//	@Summary		Set a new password after OTP verification
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.UpdatePasswordRequest	true	"E-mail and new password"
//	@Success		200		{object}	response.APIResponse			"Password updated"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Router			/auth/update-password [post]
func (h *AuthHandler) UpdatePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdatePasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.authService.UpdatePassword(r.Context(), &req); err != nil {
			logger.Warn("Password update failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Password updated"})
	}
}
