// Package metrics holds the Prometheus metrics for entity operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Operations counts registry calls by entity, operation and outcome.
	Operations *prometheus.CounterVec
	// Records tracks the number of stored records per entity.
	Records *prometheus.GaugeVec
}

// New creates the metrics and registers them with reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "student_records_operations_total",
			Help: "Total number of entity operations, labeled by entity, operation and outcome",
		}, []string{"entity", "operation", "outcome"}),
		Records: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "student_records_stored",
			Help: "Current number of stored records, labeled by entity",
		}, []string{"entity"}),
	}
}

// ObserveOperation increments the operation counter. Safe on a nil *Metrics.
func (m *Metrics) ObserveOperation(entity, operation, outcome string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(entity, operation, outcome).Inc()
}

// IncrementRecords bumps the stored-records gauge. Safe on a nil *Metrics.
func (m *Metrics) IncrementRecords(entity string) {
	if m == nil {
		return
	}
	m.Records.WithLabelValues(entity).Inc()
}
