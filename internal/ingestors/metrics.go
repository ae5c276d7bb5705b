package ingestors

import (
	"hotpath-analytics/internal/shared/metrics"
)

var (
	metricChunkIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "chunk_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
