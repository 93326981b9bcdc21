// Package ratelimit throttles the public authentication endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storerating/config"
	"storerating/internal/domain/service"
	"storerating/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultPrefix  = "storerating:ratelimit"
	defaultLimit   = 10
	defaultWindow  = time.Minute
	redisOpTimeout = 2 * time.Second
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// FixedWindowLimiter counts requests per key in fixed time windows stored in
// Redis, so every instance shares the same quota.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration
	prefix string
	client redis.UniversalClient
	logger *slog.Logger
	now    func() time.Time
}

// NewFixedWindowLimiter creates a Redis-backed limiter on an existing client.
func NewFixedWindowLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration, logger *slog.Logger) (*FixedWindowLimiter, error) {
	if client == nil {
		return nil, errors.New("rate limiter requires a redis client")
	}
	if limit <= 0 || window < time.Millisecond {
		return nil, errors.New("rate limiter requires positive limit and window")
	}

	prefix = strings.TrimRight(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &FixedWindowLimiter{
		limit:  limit,
		window: window,
		prefix: prefix,
		client: client,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Allow reports whether key is still within quota. Redis failures deny the request.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	windowMs := l.window.Milliseconds()
	slot := l.now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, l.client, []string{redisKey}, windowMs).Int64()
	if err != nil {
		if l.logger != nil {
			l.logger.WarnContext(ctx, "Rate limiter unavailable, denying request",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return false
	}

	return count <= int64(l.limit)
}

// allowAll is used when rate limiting is disabled.
type allowAll struct{}

func (allowAll) Allow(context.Context, string) bool { return true }

// Params holds dependencies for the rate limiter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter builds the limiter configured by rateLimit and redis. Without
// both, every request is allowed.
func NewRateLimiter(params Params) (service.RateLimiter, error) {
	logger := params.Logger.With(slog.String("component", "ratelimit"))
	rl := params.Config.RateLimit
	rc := params.Config.Redis

	if rl == nil || !rl.Enabled {
		logger.Info("Rate limiting disabled")

		return allowAll{}, nil
	}
	if rc == nil || strings.TrimSpace(rc.Addr) == "" {
		return nil, errors.New("rate limiting is enabled but redis.addr is not set")
	}

	limit, window := rl.Limit, rl.Window
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	limiter, err := NewFixedWindowLimiter(client, rl.Prefix, limit, window, logger)
	if err != nil {
		_ = client.Close()

		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	logger.Info("Rate limiting enabled",
		slog.String("redis", rc.Addr),
		slog.Int("limit", limit),
		slog.Duration("window", window),
	)

	return limiter, nil
}
