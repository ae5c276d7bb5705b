package sinks

import (
	"context"
	"io"
	"sync"

	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/rankers"
)

// consoleSink renders each ranked report as its framed text block and writes
// it to one writer, normally stdout. Reports arrive concurrently from every
// count partition, so writes are serialized to keep blocks from interleaving.
type consoleSink struct {
	renderer *rankers.ReportRenderer
	writer   io.Writer
	mu       sync.Mutex
}

func NewConsoleSink(writer io.Writer, renderer *rankers.ReportRenderer) rankers.ReportSink {
	return &consoleSink{
		renderer: renderer,
		writer:   writer,
	}
}

func (s *consoleSink) Publish(ctx context.Context, report *models.RankedReport) error {
	rendered := s.renderer.Render(report)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.writer, rendered); err != nil {
		metricPublishFailuresTotal.WithLabelValues(sinkConsole).Inc()
		return errInternalConsoleWriteFailed(err)
	}

	metricReportsPublishedTotal.WithLabelValues(sinkConsole).Inc()
	return nil
}
