package middleware

import (
	"math"
	"strconv"
	"time"

	"storerating/config"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/service"
	"storerating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const defaultRetryAfter = time.Minute

// RateLimitMiddleware rejects callers that exceed the limiter's budget with 429.
type RateLimitMiddleware struct {
	limiter    service.RateLimiter
	metrics    *metrics.Metrics
	retryAfter string
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, m *metrics.Metrics, cfg *config.Config) *RateLimitMiddleware {
	window := defaultRetryAfter
	if cfg != nil && cfg.RateLimit != nil && cfg.RateLimit.Window > 0 {
		window = cfg.RateLimit.Window
	}

	return &RateLimitMiddleware{
		limiter:    limiter,
		metrics:    m,
		retryAfter: strconv.Itoa(int(math.Ceil(window.Seconds()))),
	}
}

// Limit counts requests per route and client IP.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		route := c.Path()

		if !m.limiter.Allow(c.Request().Context(), route+":"+c.RealIP()) {
			if m.metrics != nil {
				m.metrics.RateLimited(route)
			}
			// The limiter does not expose the remaining window, so advertise a full one.
			c.Response().Header().Set("Retry-After", m.retryAfter)

			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}
