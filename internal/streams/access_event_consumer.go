package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"hotpath-analytics/internal/aggregators"
	"hotpath-analytics/internal/events"
	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/shared/loggers"
	"hotpath-analytics/internal/shared/metrics"
	"hotpath-analytics/internal/shared/svcerrors"
	"hotpath-analytics/internal/shared/ulid"
)

// WindowServiceFactory builds the window state owned by one partition worker.
type WindowServiceFactory func(partition int) aggregators.WindowService

//go:generate mockgen -source=access_event_consumer.go -destination=./mocks/access_event_consumer_mock.go -package=mocks
type AccessEventConsumer interface {
	Start(ctx context.Context)
	Wait()
}

// accessEventConsumer runs one worker goroutine per record partition. Each
// worker owns a WindowService instance, so window state is only ever touched
// by its single writer. Records are bucketed as they arrive; watermark
// boundaries close due windows, and the resulting counts are forwarded to the
// count stream before the boundary itself, preserving the per-upstream
// ordering contract.
//
// Workers drain: they exit when the record queue is closed and every buffered
// element has been processed, or immediately when ctx is canceled.
type accessEventConsumer struct {
	queue            *PartitionedQueue[events.AccessEvent]
	newWindowService WindowServiceFactory
	countProducer    WindowCountProducer

	wg sync.WaitGroup

	logger loggers.Logger
}

func NewAccessEventConsumer(
	queue *PartitionedQueue[events.AccessEvent],
	newWindowService WindowServiceFactory,
	countProducer WindowCountProducer,
	logger loggers.Logger,
) AccessEventConsumer {
	return &accessEventConsumer{
		queue:            queue,
		newWindowService: newWindowService,
		countProducer:    countProducer,
		logger:           logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *accessEventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func(partitionIndex int, ch <-chan events.AccessEvent) {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}(partitionIndex, ch)
	}
}

// Wait blocks until every worker has exited. Close the queue first to drain.
func (consumer *accessEventConsumer) Wait() {
	consumer.wg.Wait()
}

func (consumer *accessEventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.AccessEvent) {
	windowService := consumer.newWindowService(partitionIndex)
	frontier := eventtime.NewFrontier(1)

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldStreamID, streamAccessRecords).
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
			consumer.handleEvent(ctx, partitionIndex, windowService, frontier, event)
		}
	}
}

func (consumer *accessEventConsumer) handleEvent(
	ctx context.Context,
	partitionIndex int,
	windowService aggregators.WindowService,
	frontier *eventtime.Frontier,
	event events.AccessEvent,
) {
	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("record worker panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricStreamConsumedTotal.WithLabelValues(streamAccessRecords, svcErr.Code).Inc()
		}
	}()

	if !event.IsBoundary() {
		windowService.Add(ctx, event.Record)
		metricStreamConsumedTotal.WithLabelValues(streamAccessRecords, metrics.ValueNoError).Inc()
		return
	}

	before := frontier.Min()
	watermark := frontier.Update(0, event.Watermark)
	if !watermark.AfterWatermark(before) {
		return
	}

	// Counts first, then the boundary that closed them.
	for _, count := range windowService.CloseDue(ctx, watermark) {
		if err := consumer.countProducer.Produce(ctx, partitionIndex, count); err != nil {
			loggers.Ctx(ctx).Error().Err(err).
				Str(loggers.FieldWindowEnd, count.WindowEnd.UTC().String()).
				Msg("failed to forward window count")
			return
		}
	}
	if err := consumer.countProducer.AdvanceWatermark(ctx, partitionIndex, watermark); err != nil {
		loggers.Ctx(ctx).Error().Err(err).
			Str(loggers.FieldWatermark, watermark.String()).
			Msg("failed to forward watermark")
	}
}
