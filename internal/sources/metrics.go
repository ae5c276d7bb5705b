package sources

import (
	"hotpath-analytics/internal/shared/metrics"
)

var (
	metricLinesReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "lines_read_total",
		},
		[]string{"source_id"},
	)

	metricRotationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "rotations_total",
		},
		[]string{"source_id"},
	)
)
