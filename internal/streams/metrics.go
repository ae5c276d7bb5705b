package streams

import (
	"hotpath-analytics/internal/shared/metrics"
)

var (
	streamAccessRecords = "access_records"
	streamWindowCounts  = "window_counts"

	metricStreamPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "published_total",
		},
		[]string{"stream_id"},
	)

	metricStreamConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	// metricBoundaryBroadcastTotal counts watermark boundaries fanned out to
	// all partitions of a stream. One broadcast increments once, not once per
	// partition.
	metricBoundaryBroadcastTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "boundary_broadcast_total",
		},
		[]string{"stream_id"},
	)
)
