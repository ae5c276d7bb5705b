package sinks

import (
	"hotpath-analytics/internal/shared/metrics"
)

const (
	// sink_id label values.
	sinkConsole = "console"
	sinkArchive = "archive"
)

var (
	metricReportsPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSink,
			Name:      "reports_published_total",
		},
		[]string{"sink_id"},
	)

	metricPublishFailuresTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSink,
			Name:      "publish_failures_total",
		},
		[]string{"sink_id"},
	)
)
