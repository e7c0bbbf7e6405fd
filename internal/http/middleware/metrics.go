// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file exposes Prometheus instrumentation for the translation API.
// Series are namespaced under translation_http_* and labeled by method,
// registered route, and status, so raw URLs (which embed record UUIDs) never
// become label values and cardinality stays bounded.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// reqTotal counts requests by method, route, and status code.
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "translation",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests served by the translation API.",
		},
		[]string{"method", "path", "status"},
	)

	// reqDuration records request latency. The upper buckets are wide because
	// cache-miss translations block on the inference provider, which can take
	// tens of seconds; the lower ones resolve cache hits and CRUD reads.
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "translation",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	// reqInflight gauges requests currently being processed.
	reqInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "translation",
			Subsystem: "http",
			Name:      "requests_inflight",
			Help:      "HTTP requests currently in flight.",
		},
	)

	// respSize records response body sizes. Responses are JSON envelopes
	// around translated text, so the distribution tops out well below a
	// megabyte.
	respSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "translation",
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response size in bytes.",
			Buckets:   []float64{256, 1 << 10, 4 << 10, 16 << 10, 64 << 10, 256 << 10, 1 << 20},
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(reqTotal, reqDuration, reqInflight, respSize)
}

// Metrics returns a Gin middleware that records the translation_http_*
// series for every request. The path label is the registered route
// (c.FullPath()), falling back to the raw path only for unmatched routes.
// Pair it with a /metrics endpoint serving promhttp.Handler().
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInflight.Inc()
		defer reqInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		reqTotal.WithLabelValues(method, path, status).Inc()
		reqDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size >= 0 { // -1 when unknown (e.g. hijacked)
			respSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
