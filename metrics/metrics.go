// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	VisitsTracked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visits_tracked_total",
			Help: "Total number of visits written to the visit log",
		},
	)

	VisitsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visits_dropped_total",
			Help: "Total number of visits dropped because the tracker queue was full",
		},
	)

	ContactMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"}, // status: accepted, rejected, failed
	)
)

// RecordHTTPRequestDuration records the latency of one handled request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementContactMessages bumps the submission counter for one outcome.
func IncrementContactMessages(status string) {
	ContactMessages.WithLabelValues(status).Inc()
}
