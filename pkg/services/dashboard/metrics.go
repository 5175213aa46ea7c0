package dashboard

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "sales_dashboard"

type Metrics struct {
	sessions      prometheus.Counter
	fetchDuration *prometheus.HistogramVec
	fetchFailures *prometheus.CounterVec
}

// NewMetrics registers the loader collectors with reg. A nil reg yields
// working but unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		sessions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_total",
			Help:      "Number of display sessions that started a fetch cycle.",
		}),
		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent reading from the sales API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "outcome"}),
		fetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_failures_total",
			Help:      "Number of failed reads from the sales API.",
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) observeFetch(endpoint string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
		m.fetchFailures.WithLabelValues(endpoint).Inc()
	}
	m.fetchDuration.WithLabelValues(endpoint, outcome).Observe(time.Since(start).Seconds())
}
