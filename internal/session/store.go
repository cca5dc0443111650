// Package session keeps the backend credentials of each logged-in terminal in Redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// hash fields
const (
	fieldAccessToken  = "accessToken"
	fieldRefreshToken = "refreshToken"
	fieldRole         = "userRole"
	fieldEmail        = "userEmail"
	fieldUserID       = "userId"
	fieldEmployeeCode = "employeeCode"
)

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *Store) Save(ctx context.Context, id uuid.UUID, t *models.Tokens) error {
	k := key(id)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, k,
		fieldAccessToken, t.AccessToken,
		fieldRefreshToken, t.RefreshToken,
		fieldRole, t.Role,
		fieldEmail, t.Email,
		fieldUserID, t.UserID,
		fieldEmployeeCode, t.EmployeeCode,
	)
	pipe.Expire(ctx, k, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}

	return nil
}

func (s *Store) Load(ctx context.Context, id uuid.UUID) (*models.Tokens, error) {
	values, err := s.client.HGetAll(ctx, key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	if len(values) == 0 || values[fieldAccessToken] == "" {
		return nil, ErrNotFound
	}

	return &models.Tokens{
		AccessToken:  values[fieldAccessToken],
		RefreshToken: values[fieldRefreshToken],
		Role:         values[fieldRole],
		Email:        values[fieldEmail],
		UserID:       values[fieldUserID],
		EmployeeCode: values[fieldEmployeeCode],
	}, nil
}

// UpdateTokens replaces the token pair after a refresh. A session cleared in the meantime is
// not brought back.
func (s *Store) UpdateTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string) error {
	k := key(id)

	n, err := s.client.Exists(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("failed to check session %s: %w", id, err)
	}

	if n == 0 {
		return ErrNotFound
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, k, fieldAccessToken, accessToken, fieldRefreshToken, refreshToken)
	pipe.Expire(ctx, k, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update session %s: %w", id, err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", id, err)
	}

	return nil
}
