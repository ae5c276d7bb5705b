package streams

import (
	"context"
	"strconv"
	"time"

	"hotpath-analytics/internal/events"
	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/models"
)

// WindowCountProducer publishes closed-window counts onto the count stream,
// partitioned by window end. All counts for one window land in one partition,
// so a single ranking worker sees the complete window.
//
// Callers must follow the per-upstream ordering contract: publish every count
// a watermark closed before advancing that watermark downstream.
//
//go:generate mockgen -source=window_count_producer.go -destination=./mocks/window_count_producer_mock.go -package=mocks
type WindowCountProducer interface {
	// Produce publishes one closed-window count from the given upstream
	// partition of the record stream.
	Produce(ctx context.Context, upstream int, count *models.WindowCount) error
	// AdvanceWatermark broadcasts the upstream partition's watermark to every
	// count partition.
	AdvanceWatermark(ctx context.Context, upstream int, wm eventtime.Watermark) error
}

type windowCountProducer struct {
	queue *PartitionedQueue[events.WindowCountEvent]
}

func NewWindowCountProducer(queue *PartitionedQueue[events.WindowCountEvent]) WindowCountProducer {
	return &windowCountProducer{queue: queue}
}

func (producer *windowCountProducer) Produce(ctx context.Context, upstream int, count *models.WindowCount) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	producer.queue.Publish(windowKey(count.WindowEnd), events.WindowCountEvent{
		Count:    count,
		Upstream: upstream,
	})
	metricStreamPublishedTotal.WithLabelValues(streamWindowCounts).Inc()
	return nil
}

func (producer *windowCountProducer) AdvanceWatermark(ctx context.Context, upstream int, wm eventtime.Watermark) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	producer.queue.Broadcast(events.WindowCountEvent{
		Watermark: wm,
		Upstream:  upstream,
	})
	metricBoundaryBroadcastTotal.WithLabelValues(streamWindowCounts).Inc()
	return nil
}

func windowKey(windowEnd time.Time) string {
	return strconv.FormatInt(windowEnd.Unix(), 10)
}
