package rankers

import (
	"context"
	"sort"
	"time"

	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/shared/loggers"
	"hotpath-analytics/internal/shared/svcerrors"
)

// ReportSink receives one ranked report per closed window.
type ReportSink interface {
	Publish(ctx context.Context, report *models.RankedReport) error
}

// TopNSelector owns the per-partition ranking state of the count stream. It
// buffers the per-path counts of each window and schedules a one-shot timer
// at windowEnd + 1 second. When the watermark reaches a timer, the window's
// counts are complete: they are sorted by count descending, capped at the top
// size, published to every sink as one ranked report, and the buffer is
// released. Each window fires at most once.
//
// Equal counts have no defined relative order between runs.
//
// Not safe for concurrent use. Each count partition owns one TopNSelector and
// drives it from its single worker goroutine.
//
//go:generate mockgen -source=topn_selector.go -destination=./mocks/topn_selector_mock.go -package=mocks
type TopNSelector interface {
	// Buffer stores one closed-window count and arms the window's timer.
	Buffer(ctx context.Context, count *models.WindowCount)
	// FireDue fires every timer the watermark has reached, oldest first.
	// Sink failures do not stop later windows from firing; the first failure
	// is returned.
	FireDue(ctx context.Context, watermark eventtime.Watermark) *svcerrors.ServiceError
}

type topNSelector struct {
	topSize int
	sinks   []ReportSink

	// buffers holds counts of windows still waiting for their timer, keyed by
	// window end in unix seconds.
	buffers map[int64][]*models.WindowCount
	timers  *timerHeap

	// firedThrough is the highest timer timestamp FireDue has processed.
	firedThrough int64
}

func NewTopNSelector(topSize int, sinks []ReportSink) TopNSelector {
	return &topNSelector{
		topSize:      topSize,
		sinks:        sinks,
		buffers:      make(map[int64][]*models.WindowCount),
		timers:       newTimerHeap(),
		firedThrough: eventtime.InitialWatermark.Time().Unix(),
	}
}

func (s *topNSelector) Buffer(ctx context.Context, count *models.WindowCount) {
	end := count.WindowEnd.Unix()

	// A count whose timer already fired cannot join a report anymore.
	if end+1 <= s.firedThrough {
		metricStaleCountsTotal.WithLabelValues().Inc()
		loggers.Ctx(ctx).Warn().
			Time(loggers.FieldWindowEnd, count.WindowEnd).
			Str("request_path", count.RequestPath).
			Msg("count arrived after its window fired")
		return
	}

	s.buffers[end] = append(s.buffers[end], count)
	if s.timers.Schedule(end + 1) {
		metricPendingTimers.WithLabelValues().Inc()
	}
}

func (s *topNSelector) FireDue(ctx context.Context, watermark eventtime.Watermark) *svcerrors.ServiceError {
	through := watermark.Time().Unix()
	if through > s.firedThrough {
		s.firedThrough = through
	}

	var firstErr *svcerrors.ServiceError
	for _, at := range s.timers.PopDue(through) {
		metricPendingTimers.WithLabelValues().Dec()
		if svcErr := s.fire(ctx, at); svcErr != nil && firstErr == nil {
			firstErr = svcErr
		}
	}
	return firstErr
}

// fire ranks and publishes the window whose timer was set for at. The buffer
// is released before publishing, so a failing sink cannot cause a second
// report for the same window.
func (s *topNSelector) fire(ctx context.Context, at int64) *svcerrors.ServiceError {
	end := at - 1
	buffered := s.buffers[end]
	delete(s.buffers, end)
	if len(buffered) == 0 {
		return nil
	}

	// Highest request count first. Equal counts keep no particular order.
	sort.Slice(buffered, func(i, j int) bool { return buffered[i].Count > buffered[j].Count })

	size := s.topSize
	if len(buffered) < size {
		size = len(buffered)
	}
	entries := make([]models.ReportEntry, 0, size)
	for _, count := range buffered[:size] {
		entries = append(entries, models.ReportEntry{
			RequestPath: count.RequestPath,
			Count:       count.Count,
		})
	}

	report := &models.RankedReport{
		WindowEnd: time.Unix(end, 0).UTC(),
		Entries:   entries,
	}

	var firstErr *svcerrors.ServiceError
	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, report); err != nil {
			svcErr := errInternalReportSinkFailed(err)
			loggers.Ctx(ctx).Error().Err(svcErr).
				Time(loggers.FieldWindowEnd, report.WindowEnd).
				Msg("report sink publish failed")
			if firstErr == nil {
				firstErr = svcErr
			}
		}
	}

	metricReportsEmittedTotal.WithLabelValues().Inc()
	loggers.Ctx(ctx).Info().
		Time(loggers.FieldWindowEnd, report.WindowEnd).
		Int("entries", len(entries)).
		Msg("ranked report emitted")

	return firstErr
}
