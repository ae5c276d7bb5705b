package aggregators

import (
	"hotpath-analytics/internal/shared/metrics"
)

var (
	// metricLateRecordsDroppedTotal counts records whose window was already
	// closed when they arrived. The watermark promised no more input for that
	// window, so the record is dropped rather than reopening released state.
	metricLateRecordsDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWindowing,
			Name:      "late_records_dropped_total",
		},
		[]string{},
	)

	// metricWindowAssignmentFailuresTotal counts records that fell outside the
	// window computed for them. With epoch-aligned fixed windows every
	// timestamp has exactly one window, so any increment here points at broken
	// clock math.
	metricWindowAssignmentFailuresTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWindowing,
			Name:      "window_assignment_failures_total",
		},
		[]string{},
	)

	metricWindowsClosedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWindowing,
			Name:      "windows_closed_total",
		},
		[]string{},
	)

	// metricActiveWindows tracks open windows across all partitions.
	metricActiveWindows = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWindowing,
			Name:      "active_windows",
		},
		[]string{},
	)
)
