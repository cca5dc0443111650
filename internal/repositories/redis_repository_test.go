package repository_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/config"
	repository "github.com/aaravmahajanofficial/hypermart-pos/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLoginRateLimit(t *testing.T) {
	cfg := config.RateConfig{MaxAttempts: 3, WindowSize: 60 * time.Second}
	now := time.Unix(1_800_000_000, 123)
	key := "pos:login_attempts:EMP042"

	expectPipeline := func(mock redismock.ClientMock, count int64) {
		mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(now.Unix()-60, 10)).SetVal(0)
		mock.ExpectZAdd(key, redis.Z{Score: float64(now.Unix()), Member: strconv.FormatInt(now.UnixNano(), 10)}).SetVal(1)
		mock.ExpectZCard(key).SetVal(count)
		mock.ExpectExpire(key, cfg.WindowSize).SetVal(true)
	}

	t.Run("Success - Within Limit", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg, repository.WithClock(func() time.Time { return now }))
		expectPipeline(mock, 1)

		// Act
		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), "EMP042")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2, remaining)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Last Allowed Attempt", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg, repository.WithClock(func() time.Time { return now }))
		expectPipeline(mock, 3)

		// Act
		allowed, remaining, _, err := repo.CheckLoginRateLimit(t.Context(), "EMP042")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Limit Exceeded Reports Retry After", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg, repository.WithClock(func() time.Time { return now }))
		expectPipeline(mock, 4)
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).
			SetVal([]redis.Z{{Score: float64(now.Unix() - 45), Member: "x"}})

		// Act
		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), "EMP042")

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.Equal(t, 15, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Pipeline Error", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg, repository.WithClock(func() time.Time { return now }))
		mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(now.Unix()-60, 10)).SetErr(errors.New("connection refused"))

		// Act
		allowed, _, _, err := repo.CheckLoginRateLimit(t.Context(), "EMP042")

		// Assert
		require.Error(t, err)
		assert.False(t, allowed)
		assert.Contains(t, err.Error(), "redis pipeline error")
	})
}

func TestResetLoginRateLimit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, config.RateConfig{})
		mock.ExpectDel("pos:login_attempts:EMP042").SetVal(1)

		// Act
		err := repo.ResetLoginRateLimit(t.Context(), "EMP042")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, config.RateConfig{})
		mock.ExpectDel("pos:login_attempts:EMP042").SetErr(errors.New("timeout"))

		// Act
		err := repo.ResetLoginRateLimit(t.Context(), "EMP042")

		// Assert
		assert.Error(t, err)
	})
}
