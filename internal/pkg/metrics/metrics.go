package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the marketplace.
type Metrics struct {
	ChangeRequestsSubmitted prometheus.Counter
	ChangeRequestsResolved  *prometheus.CounterVec
	NotificationFailures    prometheus.Counter
	RequestDuration         *prometheus.HistogramVec
}

func New(namespace string) *Metrics {
	return &Metrics{
		ChangeRequestsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_requests_submitted_total",
			Help:      "Manager edits merged into a pending change request",
		}),
		ChangeRequestsResolved: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_requests_resolved_total",
			Help:      "Change requests resolved by an admin",
		}, []string{"outcome"}),
		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Best-effort notification dispatches that failed",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and path",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
