package cms

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records CMS round trips for the /metrics endpoint.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the CMS client collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cms_client_requests_total",
				Help: "CMS requests by method, resource and status code",
			},
			[]string{"method", "resource", "code"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cms_client_request_duration_seconds",
				Help:    "CMS request latency",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"method", "resource"},
		),
	}
}

func (m *Metrics) observe(method, resource string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(method, resource, code).Inc()
	m.duration.WithLabelValues(method, resource).Observe(elapsed.Seconds())
}
