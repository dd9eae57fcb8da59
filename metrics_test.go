package yangvalidator

import (
	"testing"
	"time"
)

func TestMetricsRecordValidation(t *testing.T) {
	m := NewMetrics()

	m.RecordValidation(10*time.Millisecond, true)
	m.RecordValidation(30*time.Millisecond, false)

	if got := m.ValidationsTotal(); got != 2 {
		t.Errorf("ValidationsTotal() = %d; want 2", got)
	}
	if got := m.ValidationsValid(); got != 1 {
		t.Errorf("ValidationsValid() = %d; want 1", got)
	}
	if got := m.ValidationRate(); got != 0.5 {
		t.Errorf("ValidationRate() = %f; want 0.5", got)
	}
	if got := m.MinValidationTime(); got != 10*time.Millisecond {
		t.Errorf("MinValidationTime() = %v; want 10ms", got)
	}
	if got := m.MaxValidationTime(); got != 30*time.Millisecond {
		t.Errorf("MaxValidationTime() = %v; want 30ms", got)
	}
	if got := m.AverageValidationTime(); got != 20*time.Millisecond {
		t.Errorf("AverageValidationTime() = %v; want 20ms", got)
	}
}

func TestMetricsEmpty(t *testing.T) {
	m := NewMetrics()
	if got := m.MinValidationTime(); got != 0 {
		t.Errorf("MinValidationTime() on empty metrics = %v; want 0", got)
	}
	if got := m.ValidationRate(); got != 0 {
		t.Errorf("ValidationRate() on empty metrics = %f; want 0", got)
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordNode()
	m.RecordNode()
	m.RecordFilterMerge()
	m.RecordFilterDrop()
	m.RecordDeferred(3)
	m.RecordResolved(2)
	m.RecordIssue(SeverityError)
	m.RecordIssue(SeverityWarning)

	s := m.Snapshot()
	if s.NodesVisited != 2 {
		t.Errorf("NodesVisited = %d; want 2", s.NodesVisited)
	}
	if s.FilterMerges != 1 || s.FilterDrops != 1 {
		t.Errorf("FilterMerges/Drops = %d/%d; want 1/1", s.FilterMerges, s.FilterDrops)
	}
	if s.DeferredAdded != 3 || s.DeferredResolved != 2 {
		t.Errorf("Deferred added/resolved = %d/%d; want 3/2", s.DeferredAdded, s.DeferredResolved)
	}
	if s.ErrorsTotal != 1 || s.WarningsTotal != 1 {
		t.Errorf("Errors/Warnings = %d/%d; want 1/1", s.ErrorsTotal, s.WarningsTotal)
	}
}
