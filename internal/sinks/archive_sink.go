package sinks

import (
	"context"

	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/rankers"
	"hotpath-analytics/internal/stores"
)

// archiveSink persists each ranked report through the report store, which
// backs the HTTP report endpoints and keeps reports across restarts.
type archiveSink struct {
	reportStore stores.ReportStore
}

func NewArchiveSink(reportStore stores.ReportStore) rankers.ReportSink {
	return &archiveSink{
		reportStore: reportStore,
	}
}

func (s *archiveSink) Publish(ctx context.Context, report *models.RankedReport) error {
	if err := s.reportStore.Put(ctx, report); err != nil {
		metricPublishFailuresTotal.WithLabelValues(sinkArchive).Inc()
		return errInternalArchiveReportFailed(err)
	}

	metricReportsPublishedTotal.WithLabelValues(sinkArchive).Inc()
	return nil
}
