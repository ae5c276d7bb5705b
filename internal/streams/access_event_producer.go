package streams

import (
	"context"
	"sync"

	"hotpath-analytics/internal/events"
	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/models"
)

// AccessEventProducer publishes parsed access records onto the record stream,
// partitioned by request path.
//
// Partition strategy: the ranking key is the request path, so the path is the
// partition key. All records for one path land in one partition and are
// counted by a single worker goroutine, which removes any need for locking
// around window state (single-writer-per-key).
//
// Watermark strategy: each produced record first moves the shared event-time
// assigner forward. Whenever that advances the watermark, a boundary element
// is broadcast to every partition, so partitions that receive no records for
// a path still learn that event time has progressed and can close their
// windows. Boundaries may overtake records published concurrently by other
// sources; consumers tolerate that because a record behind a boundary is
// either still on time for an open window or provably late for a closed one.
//
//go:generate mockgen -source=access_event_producer.go -destination=./mocks/access_event_producer_mock.go -package=mocks
type AccessEventProducer interface {
	// Produce assigns event time to the record and publishes it.
	Produce(ctx context.Context, record *models.AccessRecord) error
	// Seal broadcasts an end-of-input boundary. Every open window downstream
	// closes and every pending timer fires. Produce must not be called after
	// Seal.
	Seal(ctx context.Context)
}

type accessEventProducer struct {
	queue    *PartitionedQueue[events.AccessEvent]
	assigner *eventtime.Assigner

	mu            sync.Mutex
	lastBroadcast int64 // unix millis of the last broadcast watermark

	sealOnce sync.Once
}

func NewAccessEventProducer(queue *PartitionedQueue[events.AccessEvent], assigner *eventtime.Assigner) AccessEventProducer {
	return &accessEventProducer{
		queue:         queue,
		assigner:      assigner,
		lastBroadcast: eventtime.InitialWatermark.UnixMilli(),
	}
}

func (producer *accessEventProducer) Produce(ctx context.Context, record *models.AccessRecord) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	wm := producer.assigner.Observe(record.EventTime)
	producer.queue.Publish(record.RequestPath, events.AccessEvent{Record: record, Watermark: wm})
	metricStreamPublishedTotal.WithLabelValues(streamAccessRecords).Inc()

	producer.maybeBroadcast(wm)
	return nil
}

func (producer *accessEventProducer) Seal(ctx context.Context) {
	producer.sealOnce.Do(func() {
		producer.queue.Broadcast(events.AccessEvent{Watermark: eventtime.MaxWatermark})
		metricBoundaryBroadcastTotal.WithLabelValues(streamAccessRecords).Inc()
	})
}

// maybeBroadcast fans a boundary out once per watermark advance. Concurrent
// producers can broadcast out of order; downstream frontiers ignore
// regressions, so the occasional stale boundary is harmless.
func (producer *accessEventProducer) maybeBroadcast(wm eventtime.Watermark) {
	ms := wm.UnixMilli()

	producer.mu.Lock()
	if ms <= producer.lastBroadcast {
		producer.mu.Unlock()
		return
	}
	producer.lastBroadcast = ms
	producer.mu.Unlock()

	producer.queue.Broadcast(events.AccessEvent{Watermark: wm})
	metricBoundaryBroadcastTotal.WithLabelValues(streamAccessRecords).Inc()
}
