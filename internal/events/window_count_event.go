package events

import (
	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/models"
)

// WindowCountEvent is one element of the count stream, the hop between window
// aggregation and top-N ranking. A set Count carries the per-path total of a
// closed window; a nil Count makes the element a pure watermark boundary.
//
// Upstream is the record-stream partition the element came from. Ranking may
// only act on a window once every upstream partition has sent a boundary past
// its end: each upstream closes its windows independently, so counts for the
// same window arrive interleaved from all of them. Consumers feed
// (Upstream, Watermark) pairs of boundary elements into an eventtime.Frontier
// and use its minimum as the local watermark.
//
// Ordering contract, per upstream: a boundary with watermark W is sent only
// after every count with WindowEnd <= W from that upstream. Channels are
// FIFO, so once the frontier minimum reaches W, no count for a window ending
// at or before W is still in flight.
type WindowCountEvent struct {
	Count     *models.WindowCount
	Watermark eventtime.Watermark
	Upstream  int
}

// IsBoundary reports whether the element only carries watermark progress.
func (e WindowCountEvent) IsBoundary() bool {
	return e.Count == nil
}
