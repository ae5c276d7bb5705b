package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"hotpath-analytics/internal/events"
	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/rankers"
	"hotpath-analytics/internal/shared/loggers"
	"hotpath-analytics/internal/shared/metrics"
	"hotpath-analytics/internal/shared/svcerrors"
	"hotpath-analytics/internal/shared/ulid"
)

// TopNSelectorFactory builds the ranking state owned by one partition worker.
type TopNSelectorFactory func(partition int) rankers.TopNSelector

//go:generate mockgen -source=window_count_consumer.go -destination=./mocks/window_count_consumer_mock.go -package=mocks
type WindowCountConsumer interface {
	Start(ctx context.Context)
	Wait()
}

// windowCountConsumer runs one worker goroutine per count partition. Counts
// are buffered by window end; boundary elements feed a frontier spanning all
// upstream record partitions, and its minimum drives the selector's timers.
// A window's ranking fires only after every upstream has reported a
// watermark past it, which is exactly when no count for that window can
// still be in flight.
type windowCountConsumer struct {
	queue           *PartitionedQueue[events.WindowCountEvent]
	upstreams       int
	newTopNSelector TopNSelectorFactory

	wg sync.WaitGroup

	logger loggers.Logger
}

func NewWindowCountConsumer(
	queue *PartitionedQueue[events.WindowCountEvent],
	upstreams int,
	newTopNSelector TopNSelectorFactory,
	logger loggers.Logger,
) WindowCountConsumer {
	return &windowCountConsumer{
		queue:           queue,
		upstreams:       upstreams,
		newTopNSelector: newTopNSelector,
		logger:          logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *windowCountConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func(partitionIndex int, ch <-chan events.WindowCountEvent) {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}(partitionIndex, ch)
	}
}

// Wait blocks until every worker has exited. Close the queue first to drain.
func (consumer *windowCountConsumer) Wait() {
	consumer.wg.Wait()
}

func (consumer *windowCountConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.WindowCountEvent) {
	selector := consumer.newTopNSelector(partitionIndex)
	frontier := eventtime.NewFrontier(consumer.upstreams)

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldStreamID, streamWindowCounts).
		Str(loggers.FieldRequestID, ulid.New()).
		Logger().WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handleEvent(ctx, selector, frontier, event)
		}
	}
}

func (consumer *windowCountConsumer) handleEvent(
	ctx context.Context,
	selector rankers.TopNSelector,
	frontier *eventtime.Frontier,
	event events.WindowCountEvent,
) {
	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("count worker panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricStreamConsumedTotal.WithLabelValues(streamWindowCounts, svcErr.Code).Inc()
		}
	}()

	if !event.IsBoundary() {
		selector.Buffer(ctx, event.Count)
		metricStreamConsumedTotal.WithLabelValues(streamWindowCounts, metrics.ValueNoError).Inc()
		return
	}

	before := frontier.Min()
	watermark := frontier.Update(event.Upstream, event.Watermark)
	if !watermark.AfterWatermark(before) {
		return
	}

	if svcErr := selector.FireDue(ctx, watermark); svcErr != nil {
		metricStreamConsumedTotal.WithLabelValues(streamWindowCounts, svcErr.Code).Inc()
		loggers.Ctx(ctx).Error().Err(svcErr).
			Str(loggers.FieldWatermark, watermark.String()).
			Msg("ranking fire failed")
	}
}
