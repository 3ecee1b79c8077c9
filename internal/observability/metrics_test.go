package observability_test

import (
	"testing"

	"github.com/hance08/bankist/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_OperationCounts(t *testing.T) {
	m := observability.NewMetrics()

	m.RecordOperation("transfer", observability.OutcomeSuccess)
	m.RecordOperation("transfer", observability.OutcomeRejected)
	m.RecordOperation("transfer", observability.OutcomeRejected)
	m.RecordOperation("loan", observability.OutcomeSuccess)

	counts, err := m.OperationCounts()
	if err != nil {
		t.Fatal(err)
	}

	want := []observability.OperationCount{
		{"loan", observability.OutcomeSuccess, 1},
		{"transfer", observability.OutcomeRejected, 2},
		{"transfer", observability.OutcomeSuccess, 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(counts), len(want), counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *observability.Metrics
	m.RecordOperation("transfer", observability.OutcomeSuccess)
}

func TestNewMetrics_Twice(t *testing.T) {
	observability.NewMetrics()
	observability.NewMetrics()
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "bogus"} {
		logger, err := observability.NewLogger(level)
		if err != nil {
			t.Fatalf("NewLogger(%q): %v", level, err)
		}
		logger.Sync()
	}
}

func TestMetrics_SeriesPerOutcome(t *testing.T) {
	m := observability.NewMetrics()
	m.RecordOperation("login", observability.OutcomeSuccess)
	m.RecordOperation("login", observability.OutcomeSuccess)
	m.RecordOperation("login", observability.OutcomeError)

	n, err := testutil.GatherAndCount(m.Registry, "bankist_operations_total")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("series = %d, want 2", n)
	}
}
