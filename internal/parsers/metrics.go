package parsers

import (
	"hotpath-analytics/internal/shared/metrics"
)

const (
	rejectReasonPattern     = "pattern"
	rejectReasonTimestamp   = "timestamp"
	rejectReasonRequestLine = "request_line"
)

var (
	// metricParsedLinesTotal counts lines that parsed into an access record.
	metricParsedLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "parsed_lines_total",
		},
		[]string{},
	)

	// metricRejectedLinesTotal counts lines dropped before entering the stream.
	//
	// The reason label narrows down which part of the line was malformed:
	//   - "pattern": the line does not match the combined log format at all
	//   - "timestamp": the bracketed timestamp did not parse
	//   - "request_line": the quoted request carried no URL path
	metricRejectedLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "rejected_lines_total",
		},
		[]string{"reason"},
	)

	// metricParsedUserAgentsTotal counts parsed records by browser family. The
	// family never feeds the ranking key, it exists for traffic-mix dashboards
	// only.
	metricParsedUserAgentsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "parsed_user_agents_total",
		},
		[]string{"family"},
	)
)
