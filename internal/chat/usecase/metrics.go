package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"concierge-router/internal/router"
)

type metrics struct {
	decisions          *prometheus.CounterVec
	domainConfidence   prometheus.Histogram
	collaboratorErrors *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "decisions_total",
			Help:      "Routing decisions by strategy.",
		}, []string{"strategy"}),
		domainConfidence: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "domain_confidence",
			Help:      "Domain classifier confidence of routed messages.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		collaboratorErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "collaborator_errors_total",
			Help:      "Failed calls to downstream processors.",
		}, []string{"target"}),
	}
}

func (m *metrics) observe(d router.Decision) {
	m.decisions.WithLabelValues(d.Strategy.String()).Inc()
	m.domainConfidence.Observe(d.Domain.Confidence)
}

func (m *metrics) collaboratorFailed(target string) {
	m.collaboratorErrors.WithLabelValues(target).Inc()
}
