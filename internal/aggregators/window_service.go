package aggregators

import (
	"context"
	"sort"
	"time"

	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/shared/loggers"
)

// WindowService owns the per-partition tumbling-window state of the record
// stream: one CountAccumulator per (request path, window) pair.
//
// Lifecycle of a window:
//   - it exists from the first record bucketed into it
//   - it closes on the first watermark at or past its end: CloseDue emits one
//     WindowCount per path and releases the window's state
//   - once closed it never reopens; records for it are late and are dropped
//
// Closing and dropping use the same comparison against the same watermark, so
// a record is dropped exactly when the state it would have touched is gone.
// Every window therefore emits at most once, and windows that never saw a
// record emit nothing.
//
// Not safe for concurrent use. Each record partition owns one WindowService
// and drives it from its single worker goroutine.
//
//go:generate mockgen -source=window_service.go -destination=./mocks/window_service_mock.go -package=mocks
type WindowService interface {
	// Add buckets one record into its window. Late records are dropped and
	// counted, never an error.
	Add(ctx context.Context, record *models.AccessRecord)
	// CloseDue closes every window whose end the watermark has reached and
	// returns their counts, windows in end order and paths sorted within each
	// window.
	CloseDue(ctx context.Context, watermark eventtime.Watermark) []*models.WindowCount
}

type windowService struct {
	windowLength time.Duration

	// state keys open windows by their end in unix seconds.
	state         map[int64]*openWindow
	closedThrough eventtime.Watermark
}

type openWindow struct {
	window eventtime.Window
	counts map[string]*CountAccumulator
}

func NewWindowService(windowLength time.Duration) WindowService {
	return &windowService{
		windowLength:  windowLength,
		state:         make(map[int64]*openWindow),
		closedThrough: eventtime.InitialWatermark,
	}
}

func (s *windowService) Add(ctx context.Context, record *models.AccessRecord) {
	window := eventtime.WindowFor(record.EventTime, s.windowLength)
	if !window.Contains(record.EventTime) {
		metricWindowAssignmentFailuresTotal.WithLabelValues().Inc()
		loggers.Ctx(ctx).Error().
			Time(loggers.FieldWindowEnd, window.End).
			Msg("record fell outside its computed window")
		return
	}

	// Late: the watermark already closed this window.
	if !s.closedThrough.Before(window.End) {
		metricLateRecordsDroppedTotal.WithLabelValues().Inc()
		loggers.Ctx(ctx).Debug().
			Time(loggers.FieldWindowEnd, window.End).
			Str(loggers.FieldWatermark, s.closedThrough.String()).
			Msg("late record dropped")
		return
	}

	open := s.state[window.End.Unix()]
	if open == nil {
		open = &openWindow{window: window, counts: make(map[string]*CountAccumulator)}
		s.state[window.End.Unix()] = open
		metricActiveWindows.WithLabelValues().Inc()
	}

	accumulator := open.counts[record.RequestPath]
	if accumulator == nil {
		accumulator = NewCountAccumulator()
		open.counts[record.RequestPath] = accumulator
	}
	accumulator.Add(record)
}

func (s *windowService) CloseDue(ctx context.Context, watermark eventtime.Watermark) []*models.WindowCount {
	if watermark.AfterWatermark(s.closedThrough) {
		s.closedThrough = watermark
	}

	// Collect due window ends in ascending order for deterministic emission
	var dueEnds []int64
	for end := range s.state {
		if !watermark.Before(time.Unix(end, 0)) {
			dueEnds = append(dueEnds, end)
		}
	}
	sort.Slice(dueEnds, func(i, j int) bool { return dueEnds[i] < dueEnds[j] })

	var counts []*models.WindowCount
	for _, end := range dueEnds {
		open := s.state[end]

		paths := make([]string, 0, len(open.counts))
		for path := range open.counts {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		for _, path := range paths {
			counts = append(counts, &models.WindowCount{
				RequestPath: path,
				WindowEnd:   open.window.End,
				Count:       open.counts[path].Count(),
			})
		}

		delete(s.state, end)
		metricActiveWindows.WithLabelValues().Dec()
		metricWindowsClosedTotal.WithLabelValues().Inc()

		loggers.Ctx(ctx).Debug().
			Time(loggers.FieldWindowEnd, open.window.End).
			Int("paths", len(open.counts)).
			Msg("window closed")
	}

	return counts
}
