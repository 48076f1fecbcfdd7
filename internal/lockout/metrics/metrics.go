package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the lockout module. All methods are
// nil-safe so services can run without metrics in tests.
type Metrics struct {
	// Decision outcomes by resulting action
	Decisions *prometheus.CounterVec

	// Reactivation outcomes by result
	Reactivations *prometheus.CounterVec

	// Full event-processing latency including directory calls
	ProcessLatency prometheus.Histogram
}

// New creates a Metrics instance with all lockout module metrics registered.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credlock_decisions_total",
			Help: "Total attempt-change decisions by resulting action",
		}, []string{"action"}), // action: "none", "disable", "already_disabled", "target_missing"

		Reactivations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "credlock_reactivations_total",
			Help: "Total reactivation requests by outcome",
		}, []string{"outcome"}), // outcome: "enabled", "noop", "rejected"

		ProcessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "credlock_process_duration_seconds",
			Help:    "Duration of attempt-change event processing including directory calls",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementDecision records a decision outcome.
func (m *Metrics) IncrementDecision(action string) {
	if m != nil {
		m.Decisions.WithLabelValues(action).Inc()
	}
}

// IncrementReactivation records a reactivation outcome.
func (m *Metrics) IncrementReactivation(outcome string) {
	if m != nil {
		m.Reactivations.WithLabelValues(outcome).Inc()
	}
}

// ObserveProcessLatency records the duration of a full event evaluation.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}
