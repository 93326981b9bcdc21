package middleware

import (
	"storerating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests no route matched, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle must run outside the middleware that renders errors so the recorded status is final.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.RequestStarted()

		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		done(c.Request().Method, route, c.Response().Status)

		return err
	}
}
