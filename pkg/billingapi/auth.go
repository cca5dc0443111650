package billingapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type authenticateRequest struct {
	EmployeeCode string `json:"employeeCode"`
	Password     string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Role         string `json:"role"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
}

// Authenticate exchanges staff credentials for a token pair. The e-mail and user id are read
// from the access token's claims; the backend signs it, so the client does not verify it.
func (c *Client) Authenticate(ctx context.Context, employeeCode, password string) (*models.Tokens, error) {
	var res tokenResponse

	err := c.do(ctx, call{
		endpoint: "/auth/authenticate",
		method:   http.MethodPost,
		body:     authenticateRequest{EmployeeCode: employeeCode, Password: password},
		out:      &res,
	})
	if err != nil {
		return nil, err
	}

	if res.AccessToken == "" {
		return nil, &APIError{Endpoint: "/auth/authenticate", StatusCode: http.StatusBadGateway, Message: "no access token in response"}
	}

	claims := accessClaims(res.AccessToken)

	return &models.Tokens{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Role:         res.Role,
		Email:        claims.email,
		UserID:       claims.userID,
		EmployeeCode: employeeCode,
	}, nil
}

func (c *Client) refresh(ctx context.Context, sessionID uuid.UUID, current *models.Tokens) (*models.Tokens, error) {
	if current.RefreshToken == "" {
		return nil, errors.New("no refresh token stored")
	}

	userID := current.UserID
	if userID == "" {
		userID = accessClaims(current.AccessToken).userID
	}

	var res tokenResponse

	err := c.do(ctx, call{
		endpoint: "/auth/refreshToken",
		method:   http.MethodPost,
		body:     refreshRequest{RefreshToken: current.RefreshToken, UserID: userID},
		out:      &res,
	})
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}

	if res.AccessToken == "" {
		return nil, errors.New("token refresh returned no access token")
	}

	// some backends rotate only the access token
	if res.RefreshToken == "" {
		res.RefreshToken = current.RefreshToken
	}

	if err := c.tokens.UpdateTokens(ctx, sessionID, res.AccessToken, res.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refreshed tokens: %w", err)
	}

	updated := *current
	updated.AccessToken = res.AccessToken
	updated.RefreshToken = res.RefreshToken

	return &updated, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, call{
		endpoint: "/user/forgotPassword",
		method:   http.MethodPost,
		body:     map[string]string{"userEmail": email},
	})
}

func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	return c.do(ctx, call{
		endpoint: "/user/verifyOTP",
		method:   http.MethodPost,
		body:     map[string]string{"userEmail": email, "otp": otp},
	})
}

func (c *Client) UpdatePassword(ctx context.Context, email, password string) error {
	return c.do(ctx, call{
		endpoint: "/user/updatePassword",
		method:   http.MethodPost,
		body:     map[string]string{"mail": email, "password": password},
	})
}

type claimValues struct {
	email  string
	userID string
}

func accessClaims(token string) claimValues {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return claimValues{}
	}

	values := claimValues{
		email:  firstString(claims, "email", "userEmail", "sub"),
		userID: firstString(claims, "userId", "id", "uid"),
	}

	return values
}

func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}

	return ""
}
