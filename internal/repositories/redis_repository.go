package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/hypermart-pos/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckLoginRateLimit(ctx context.Context, employeeCode string) (bool, int, int, error)
	ResetLoginRateLimit(ctx context.Context, employeeCode string) error
}

type RateLimitOption func(*redisRepository)

// WithClock replaces time.Now for the sliding window.
func WithClock(now func() time.Time) RateLimitOption {
	return func(r *redisRepository) { r.now = now }
}

type redisRepository struct {
	client *redis.Client
	cfg    config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.RedisConnect.Username, cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg config.RateConfig, opts ...RateLimitOption) RateLimitRepository {
	r := &redisRepository{client: client, cfg: cfg, now: time.Now}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func loginAttemptsKey(employeeCode string) string {
	return "pos:login_attempts:" + employeeCode
}

// CheckLoginRateLimit records one attempt and returns isAllowed, attempts left, seconds to wait.
//
// Attempts live in a sorted set scored by unix second; members carry the nanosecond time so
// two attempts in the same second are both counted.
func (r *redisRepository) CheckLoginRateLimit(ctx context.Context, employeeCode string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(employeeCode)

	now := r.now()
	nowSec := now.Unix()
	window := int64(r.cfg.WindowSize.Seconds())
	windowStart := nowSec - window

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowSec), Member: strconv.FormatInt(now.UnixNano(), 10)})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.MaxAttempts - attempts

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(window), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		retryAfter := max(int64(scores[0].Score)+window-nowSec, 0)

		logger.Warn("Rate limit exceeded for employee", slog.String("employeeCode", employeeCode), slog.Int64("attempts", attempts))
		return false, 0, int(retryAfter), nil
	}

	logger.Debug("Rate limit check passed", slog.String("employeeCode", employeeCode), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
	return true, int(remaining), 0, nil
}

// ResetLoginRateLimit forgets the attempts of an employee after a successful login.
func (r *redisRepository) ResetLoginRateLimit(ctx context.Context, employeeCode string) error {
	if err := r.client.Del(ctx, loginAttemptsKey(employeeCode)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}
