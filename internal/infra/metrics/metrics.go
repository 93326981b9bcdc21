// Package metrics exposes Prometheus collectors for the HTTP layer and rating activity.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storerating"

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	ratingsSubmitted *prometheus.CounterVec
	authAttempts     *prometheus.CounterVec
	rateLimited      *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		ratingsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratings",
			Name:      "submitted_total",
			Help:      "Ratings written, split by whether a new rating was created.",
		}, []string{"created"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "attempts_total",
			Help:      "Login and registration attempts by outcome.",
		}, []string{"action", "outcome"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.ratingsSubmitted,
		m.authAttempts,
		m.rateLimited,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Handler returns an HTTP handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestStarted marks a request in flight. The returned func records its outcome.
func (m *Metrics) RequestStarted() func(method, route string, status int) {
	start := time.Now()
	m.httpInFlight.Inc()

	return func(method, route string, status int) {
		m.httpInFlight.Dec()
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RatingSubmitted counts a stored rating.
func (m *Metrics) RatingSubmitted(created bool) {
	m.ratingsSubmitted.WithLabelValues(strconv.FormatBool(created)).Inc()
}

// AuthAttempt counts a login or registration by outcome, e.g. "success".
func (m *Metrics) AuthAttempt(action, outcome string) {
	m.authAttempts.WithLabelValues(action, outcome).Inc()
}

// RateLimited counts a request rejected by the limiter.
func (m *Metrics) RateLimited(route string) {
	m.rateLimited.WithLabelValues(route).Inc()
}
