package ccapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type transportMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newTransportMetrics() *transportMetrics {
	return &transportMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "comfortcloud_requests_total",
			Help: "Comfort Cloud API requests by operation and HTTP status (error = no response)",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "comfortcloud_request_duration_seconds",
			Help:    "Comfort Cloud API request latency by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *transportMetrics) observe(op Operation, status string, d time.Duration) {
	m.requests.WithLabelValues(op.String(), status).Inc()
	m.duration.WithLabelValues(op.String()).Observe(d.Seconds())
}

func (m *transportMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requests, m.duration}
}
