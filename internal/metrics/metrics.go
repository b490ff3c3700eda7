// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// ConversionsTotal counts conversions that reached the history log.
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temperature_conversions_total",
			Help: "Successful temperature conversions by source and target scale",
		},
		[]string{"from", "to"},
	)

	// InvalidInputTotal counts convert actions rejected by the number parser.
	InvalidInputTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "temperature_invalid_input_total",
			Help: "Convert actions rejected because the input was not a number",
		},
	)

	// SessionsActive tracks open interactive WebSocket sessions.
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "temperature_sessions_active",
			Help: "Number of open interactive sessions",
		},
	)
)

// unmeasured are the scrape endpoint and the long-lived session upgrade,
// which temperature_sessions_active covers.
var unmeasured = map[string]struct{}{
	"/metrics": {},
	"/ws":      {},
}

// HTTP records request count, latency and in-flight requests.
func HTTP(c *gin.Context) {
	if _, skip := unmeasured[c.Request.URL.Path]; skip {
		c.Next()
		return
	}

	httpRequestsInFlight.Inc()
	start := time.Now()

	c.Next()

	duration := time.Since(start).Seconds()
	status := strconv.Itoa(c.Writer.Status())
	path := c.FullPath()
	if path == "" {
		path = "unknown"
	}

	httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	httpRequestsInFlight.Dec()
}
