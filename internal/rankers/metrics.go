package rankers

import (
	"hotpath-analytics/internal/shared/metrics"
)

var (
	metricReportsEmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRanking,
			Name:      "reports_emitted_total",
		},
		[]string{},
	)

	// metricPendingTimers tracks scheduled window timers that have not fired
	// yet, across all partitions.
	metricPendingTimers = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRanking,
			Name:      "pending_timers",
		},
		[]string{},
	)

	// metricStaleCountsTotal counts window counts that arrived after their
	// window's ranking already fired. The upstream ordering contract makes
	// this unreachable; an increment means the contract broke somewhere.
	metricStaleCountsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRanking,
			Name:      "stale_counts_total",
		},
		[]string{},
	)
)
