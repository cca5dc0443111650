package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/config"
	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

type redisCache struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	return &redisCache{
		client: client,
		cfg:    cfg,
	}
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)

	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.cfg.DefaultTTL
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Invalidate(ctx context.Context, prefix string) error {

	var cursor uint64

	for {
		keys, next, err := r.client.Scan(ctx, cursor, prefix+":*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("failed to scan keys under %s: %w", prefix, err)
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete keys under %s: %w", prefix, err)
			}
		}

		if next == 0 {
			return nil
		}

		cursor = next
	}
}

func (r *redisCache) Close() error {
	return nil
}

// Fetch reads key from c, or calls load and stores its result. A broken cache never fails
// the call; onCacheErr is told and load runs as if the key were missing.
func Fetch[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, bool), onCacheErr func(error)) T {

	var cached T

	found, err := c.Get(ctx, key, &cached)
	if err != nil && onCacheErr != nil {
		onCacheErr(err)
	}

	if found {
		return cached
	}

	value, ok := load(ctx)
	if !ok {
		return value
	}

	if err := c.Set(ctx, key, value, ttl); err != nil && onCacheErr != nil {
		onCacheErr(err)
	}

	return value
}
