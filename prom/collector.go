// Package prom exports validation metrics as a Prometheus collector.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	yv "github.com/yangkit/validator"
)

// Collector implements prometheus.Collector over a Metrics instance,
// reading the atomic counters on each scrape.
type Collector struct {
	metrics *yv.Metrics

	validationsTotal *prometheus.Desc
	validationsValid *prometheus.Desc
	nodesVisited     *prometheus.Desc
	filterMerges     *prometheus.Desc
	filterDrops      *prometheus.Desc
	deferredAdded    *prometheus.Desc
	deferredResolved *prometheus.Desc
	issuesTotal      *prometheus.Desc
	validationTime   *prometheus.Desc
}

// NewCollector creates a collector over m.
func NewCollector(m *yv.Metrics) *Collector {
	return &Collector{
		metrics: m,
		validationsTotal: prometheus.NewDesc(
			"yangkit_validations_total",
			"Total data tree validations performed", nil, nil),
		validationsValid: prometheus.NewDesc(
			"yangkit_validations_valid_total",
			"Validations that produced no error issue", nil, nil),
		nodesVisited: prometheus.NewDesc(
			"yangkit_nodes_visited_total",
			"Data nodes visited across all validations", nil, nil),
		filterMerges: prometheus.NewDesc(
			"yangkit_filter_merges_total",
			"Equivalent filter subtrees merged", nil, nil),
		filterDrops: prometheus.NewDesc(
			"yangkit_filter_drops_total",
			"Redundant filter nodes removed", nil, nil),
		deferredAdded: prometheus.NewDesc(
			"yangkit_deferred_checks_total",
			"Checks appended to the deferred-resolution queue", nil, nil),
		deferredResolved: prometheus.NewDesc(
			"yangkit_deferred_resolved_total",
			"Deferred checks successfully resolved", nil, nil),
		issuesTotal: prometheus.NewDesc(
			"yangkit_issues_total",
			"Validation issues by severity", []string{"severity"}, nil),
		validationTime: prometheus.NewDesc(
			"yangkit_validation_seconds_total",
			"Cumulative time spent validating", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.validationsTotal
	ch <- c.validationsValid
	ch <- c.nodesVisited
	ch <- c.filterMerges
	ch <- c.filterDrops
	ch <- c.deferredAdded
	ch <- c.deferredResolved
	ch <- c.issuesTotal
	ch <- c.validationTime
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.metrics.Snapshot()

	counter := func(desc *prometheus.Desc, v uint64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v), labels...)
	}

	counter(c.validationsTotal, s.ValidationsTotal)
	counter(c.validationsValid, s.ValidationsValid)
	counter(c.nodesVisited, s.NodesVisited)
	counter(c.filterMerges, s.FilterMerges)
	counter(c.filterDrops, s.FilterDrops)
	counter(c.deferredAdded, s.DeferredAdded)
	counter(c.deferredResolved, s.DeferredResolved)
	counter(c.issuesTotal, s.ErrorsTotal, "error")
	counter(c.issuesTotal, s.WarningsTotal, "warning")
	ch <- prometheus.MustNewConstMetric(c.validationTime, prometheus.CounterValue, s.TotalTime.Seconds())
}
