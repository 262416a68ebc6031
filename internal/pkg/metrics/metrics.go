// Package metrics provides Prometheus metrics collection for the packing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PackOperationsTotal tracks pack mutations by operation and outcome.
	PackOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pack_operations_total",
			Help: "Total number of pack operations",
		},
		[]string{"operation", "outcome"},
	)

	// StalePacks tracks the number of in-progress packs older than the
	// configured threshold, as seen by the last stale-pack sweep.
	StalePacks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stale_packs",
			Help: "In-progress packs older than the stale threshold",
		},
	)
)

// PrometheusMiddleware returns an echo middleware that collects HTTP metrics.
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			duration := time.Since(start).Seconds()
			statusCode := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
			HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()

			return err
		}
	}
}

// RecordPackOperation records the outcome of one pack mutation.
func RecordPackOperation(operation, outcome string) {
	PackOperationsTotal.WithLabelValues(operation, outcome).Inc()
}
