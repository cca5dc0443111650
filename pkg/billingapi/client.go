// Package billingapi is the REST client for the billing backend: authentication, catalog
// browsing and card payments.
package billingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultTimeout = 10 * time.Second

// TokenStore holds the backend credentials of every terminal session.
type TokenStore interface {
	Load(ctx context.Context, sessionID uuid.UUID) (*models.Tokens, error)
	UpdateTokens(ctx context.Context, sessionID uuid.UUID, accessToken, refreshToken string) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// Observer is told the outcome of every request; code is 0 for transport failures.
type Observer func(endpoint string, code int)

type Client struct {
	baseURL  *url.URL
	http     *http.Client
	tokens   TokenStore
	logger   *slog.Logger
	observer Observer
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) { cl.logger = logger }
}

func WithObserver(o Observer) Option {
	return func(cl *Client) { cl.observer = o }
}

func New(baseURL string, timeout time.Duration, tokens TokenStore, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid billing backend url %q", baseURL)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens: tokens,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL is the normalised backend root every endpoint is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type call struct {
	endpoint string
	method   string
	query    url.Values
	body     any
	out      any
	// zero for unauthenticated calls
	session uuid.UUID
}

func (c *Client) do(ctx context.Context, in call) error {
	var payload []byte

	if in.body != nil {
		var err error
		if payload, err = json.Marshal(in.body); err != nil {
			return fmt.Errorf("failed to encode %s request: %w", in.endpoint, err)
		}
	}

	authed := in.session != uuid.Nil

	var tokens *models.Tokens
	if authed {
		var err error
		if tokens, err = c.tokens.Load(ctx, in.session); err != nil {
			return fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}
	}

	res, err := c.send(ctx, in, payload, tokens)
	if err != nil {
		return err
	}

	if authed && res.StatusCode == http.StatusForbidden {
		drain(res)

		c.logger.InfoContext(ctx, "Access token rejected, refreshing", slog.String("endpoint", in.endpoint))

		if tokens, err = c.refresh(ctx, in.session, tokens); err != nil {
			return c.expire(ctx, in.session, err)
		}

		if res, err = c.send(ctx, in, payload, tokens); err != nil {
			return err
		}
	}

	defer drain(res)

	if authed && (res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden) {
		return c.expire(ctx, in.session, fmt.Errorf("%s rejected the refreshed token", in.endpoint))
	}

	if res.StatusCode >= http.StatusBadRequest {
		return apiError(in.endpoint, res)
	}

	if in.out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(in.out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", ErrUnavailable, in.endpoint, err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, in call, payload []byte, tokens *models.Tokens) (*http.Response, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(in.endpoint, "/")})
	if in.query != nil {
		u.RawQuery = in.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", in.endpoint, err)
	}

	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tokens != nil {
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	}

	start := time.Now()

	res, err := c.http.Do(req)
	if err != nil {
		c.observe(in.endpoint, 0)
		c.logger.WarnContext(ctx, "Billing backend request failed",
			slog.String("endpoint", in.endpoint),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)

		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, in.endpoint, err)
	}

	c.observe(in.endpoint, res.StatusCode)
	c.logger.DebugContext(ctx, "Billing backend request",
		slog.String("endpoint", in.endpoint),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return res, nil
}

func (c *Client) expire(ctx context.Context, sessionID uuid.UUID, cause error) error {
	c.logger.WarnContext(ctx, "Billing session expired, clearing tokens", slog.String("reason", cause.Error()))

	if err := c.tokens.Clear(ctx, sessionID); err != nil {
		c.logger.ErrorContext(ctx, "Failed to clear expired session tokens", slog.String("error", err.Error()))
	}

	return fmt.Errorf("%w: %v", ErrSessionExpired, cause)
}

func (c *Client) observe(endpoint string, code int) {
	if c.observer != nil {
		c.observer(endpoint, code)
	}
}

func apiError(endpoint string, res *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	raw, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil {
		body.Message = strings.TrimSpace(string(raw))
	}

	if body.Message == "" {
		body.Message = body.Error
	}

	return &APIError{Endpoint: endpoint, StatusCode: res.StatusCode, Message: body.Message}
}

func drain(res *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 64<<10))
	_ = res.Body.Close()
}

// IsSessionExpired reports whether err means the terminal must log in again.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
