package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storerating/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLimiter(t *testing.T, limit int) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter, err := NewFixedWindowLimiter(client, "test:ratelimit", limit, time.Minute, newDiscardLogger())
	require.NoError(t, err)

	return limiter, server
}

func TestFixedWindowLimiter_BlocksAfterLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "login:10.0.0.1"))
	assert.True(t, limiter.Allow(ctx, "login:10.0.0.1"))
	assert.False(t, limiter.Allow(ctx, "login:10.0.0.1"))

	// Keys are counted independently.
	assert.True(t, limiter.Allow(ctx, "login:10.0.0.2"))
}

func TestFixedWindowLimiter_ResetsInNextWindow(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1)
	ctx := context.Background()
	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return start }

	assert.True(t, limiter.Allow(ctx, "ip"))
	assert.False(t, limiter.Allow(ctx, "ip"))

	limiter.now = func() time.Time { return start.Add(time.Minute) }
	assert.True(t, limiter.Allow(ctx, "ip"))
}

func TestFixedWindowLimiter_SetsExpiry(t *testing.T) {
	limiter, server := newTestLimiter(t, 5)
	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return start }

	require.True(t, limiter.Allow(context.Background(), "ip"))

	keys := server.Keys()
	require.Len(t, keys, 1)
	assert.Positive(t, server.TTL(keys[0]))
}

func TestFixedWindowLimiter_FailsClosed(t *testing.T) {
	limiter, server := newTestLimiter(t, 1)
	server.Close()

	assert.False(t, limiter.Allow(context.Background(), "ip"))
}

func TestNewFixedWindowLimiter_RejectsBadInput(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	_, err := NewFixedWindowLimiter(nil, "", 1, time.Second, nil)
	assert.Error(t, err)

	_, err = NewFixedWindowLimiter(client, "", 0, time.Second, nil)
	assert.Error(t, err)
}

func TestNewRateLimiter(t *testing.T) {
	server := miniredis.RunT(t)

	t.Run("disabled allows everything", func(t *testing.T) {
		limiter, err := NewRateLimiter(Params{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		for range 100 {
			assert.True(t, limiter.Allow(context.Background(), "ip"))
		}
	})

	t.Run("enabled without redis fails", func(t *testing.T) {
		_, err := NewRateLimiter(Params{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}},
			Logger: newDiscardLogger(),
		})
		assert.Error(t, err)
	})

	t.Run("enabled with redis", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		limiter, err := NewRateLimiter(Params{
			Lc: lc,
			Config: &config.Config{
				Redis:     &config.RedisConfig{Addr: server.Addr()},
				RateLimit: &config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute},
			},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)

		assert.True(t, limiter.Allow(context.Background(), "ip"))
		assert.False(t, limiter.Allow(context.Background(), "ip"))

		lc.RequireStart()
		lc.RequireStop()
	})
}
