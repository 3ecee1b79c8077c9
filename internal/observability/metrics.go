package observability

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds the ledger's Prometheus counters.
type Metrics struct {
	// Registry is private so NewMetrics can be called more than once
	// (e.g. in tests) without duplicate collector panics.
	Registry *prometheus.Registry

	operations *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankist_operations_total",
				Help: "Ledger operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
	}
}

// RecordOperation counts one operation outcome. A nil receiver is a no-op.
func (m *Metrics) RecordOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// OperationCount is one row of the operations tally.
type OperationCount struct {
	Operation string
	Outcome   string
	Count     float64
}

// OperationCounts reads the current tally back from the registry, sorted by
// operation then outcome.
func (m *Metrics) OperationCounts() ([]OperationCount, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, err
	}

	var out []OperationCount
	for _, mf := range families {
		if mf.GetName() != "bankist_operations_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			out = append(out, OperationCount{
				Operation: labelValue(metric, "operation"),
				Outcome:   labelValue(metric, "outcome"),
				Count:     metric.GetCounter().GetValue(),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Operation != out[j].Operation {
			return out[i].Operation < out[j].Operation
		}
		return out[i].Outcome < out[j].Outcome
	})
	return out, nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
