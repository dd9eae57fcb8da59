package yangvalidator

import (
	"sync/atomic"
	"time"
)

// Metrics tracks validation performance metrics using lock-free atomic
// operations. All methods are safe for concurrent use.
type Metrics struct {
	// Validation counts
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	// Tree walk counters
	nodesVisited atomic.Uint64
	filterMerges atomic.Uint64
	filterDrops  atomic.Uint64

	// Deferred-resolution counters
	deferredAdded    atomic.Uint64
	deferredResolved atomic.Uint64

	// Issue counts by severity
	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so first value becomes the minimum
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// --- Recording Methods ---

// RecordValidation records a completed tree validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.validationTimeTotal.Add(ns)

	// Update min (CAS loop)
	for {
		old := m.validationTimeMin.Load()
		if ns >= old {
			break
		}
		if m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (CAS loop)
	for {
		old := m.validationTimeMax.Load()
		if ns <= old {
			break
		}
		if m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordNode records one visited data node.
func (m *Metrics) RecordNode() {
	m.nodesVisited.Add(1)
}

// RecordFilterMerge records one filter subtree merge.
func (m *Metrics) RecordFilterMerge() {
	m.filterMerges.Add(1)
}

// RecordFilterDrop records one redundant filter node removed from the tree.
func (m *Metrics) RecordFilterDrop() {
	m.filterDrops.Add(1)
}

// RecordDeferred records items appended to the deferred-resolution queue.
func (m *Metrics) RecordDeferred(n int) {
	m.deferredAdded.Add(uint64(n))
}

// RecordResolved records items successfully drained from the queue.
func (m *Metrics) RecordResolved(n int) {
	m.deferredResolved.Add(uint64(n))
}

// RecordIssue records an issue based on severity.
func (m *Metrics) RecordIssue(severity IssueSeverity) {
	switch severity {
	case SeverityError:
		m.errorsTotal.Add(1)
	case SeverityWarning:
		m.warningsTotal.Add(1)
	}
}

// --- Query Methods ---

// ValidationsTotal returns the total number of validations performed.
func (m *Metrics) ValidationsTotal() uint64 {
	return m.validationsTotal.Load()
}

// ValidationsValid returns the number of valid validations.
func (m *Metrics) ValidationsValid() uint64 {
	return m.validationsValid.Load()
}

// ValidationRate returns the fraction of valid validations (0.0 to 1.0).
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageValidationTime returns the average validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.validationTimeTotal.Load() / total)
}

// MinValidationTime returns the minimum validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	minVal := m.validationTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal)
}

// MaxValidationTime returns the maximum validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	return time.Duration(m.validationTimeMax.Load())
}

// NodesVisited returns the total number of data nodes visited.
func (m *Metrics) NodesVisited() uint64 {
	return m.nodesVisited.Load()
}

// FilterMerges returns the total number of filter subtree merges.
func (m *Metrics) FilterMerges() uint64 {
	return m.filterMerges.Load()
}

// FilterDrops returns the total number of redundant filter nodes removed.
func (m *Metrics) FilterDrops() uint64 {
	return m.filterDrops.Load()
}

// DeferredAdded returns the total number of deferred-resolution items
// enqueued.
func (m *Metrics) DeferredAdded() uint64 {
	return m.deferredAdded.Load()
}

// DeferredResolved returns the total number of deferred-resolution items
// successfully drained.
func (m *Metrics) DeferredResolved() uint64 {
	return m.deferredResolved.Load()
}

// ErrorsTotal returns the total number of error issues recorded.
func (m *Metrics) ErrorsTotal() uint64 {
	return m.errorsTotal.Load()
}

// WarningsTotal returns the total number of warning issues recorded.
func (m *Metrics) WarningsTotal() uint64 {
	return m.warningsTotal.Load()
}

// Snapshot is a point-in-time copy of all metric values.
type Snapshot struct {
	ValidationsTotal  uint64
	ValidationsValid  uint64
	NodesVisited      uint64
	FilterMerges      uint64
	FilterDrops       uint64
	DeferredAdded     uint64
	DeferredResolved  uint64
	ErrorsTotal       uint64
	WarningsTotal     uint64
	TotalTime         time.Duration
	MinValidationTime time.Duration
	MaxValidationTime time.Duration
}

// Snapshot returns a consistent-enough copy of the current values for
// exporting. Individual fields are read atomically; the set as a whole is
// not a single atomic read.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		ValidationsTotal:  m.validationsTotal.Load(),
		ValidationsValid:  m.validationsValid.Load(),
		NodesVisited:      m.nodesVisited.Load(),
		FilterMerges:      m.filterMerges.Load(),
		FilterDrops:       m.filterDrops.Load(),
		DeferredAdded:     m.deferredAdded.Load(),
		DeferredResolved:  m.deferredResolved.Load(),
		ErrorsTotal:       m.errorsTotal.Load(),
		WarningsTotal:     m.warningsTotal.Load(),
		TotalTime:         time.Duration(m.validationTimeTotal.Load()),
		MinValidationTime: m.MinValidationTime(),
		MaxValidationTime: m.MaxValidationTime(),
	}
}
