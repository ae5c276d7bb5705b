package rankers

import "container/heap"

// timerHeap is a min-heap of event-time timer timestamps (unix seconds) with
// duplicate suppression. Scheduling a timestamp twice keeps one timer, and
// popping returns timestamps in ascending order.
type timerHeap struct {
	heap      int64Heap
	scheduled map[int64]struct{}
}

func newTimerHeap() *timerHeap {
	return &timerHeap{scheduled: make(map[int64]struct{})}
}

// Schedule registers a timer and reports whether it was newly added.
func (t *timerHeap) Schedule(at int64) bool {
	if _, ok := t.scheduled[at]; ok {
		return false
	}
	t.scheduled[at] = struct{}{}
	heap.Push(&t.heap, at)
	return true
}

// PopDue removes and returns, in ascending order, every timer at or before
// through.
func (t *timerHeap) PopDue(through int64) []int64 {
	var due []int64
	for t.heap.Len() > 0 && t.heap[0] <= through {
		at := heap.Pop(&t.heap).(int64)
		delete(t.scheduled, at)
		due = append(due, at)
	}
	return due
}

func (t *timerHeap) Len() int {
	return t.heap.Len()
}

type int64Heap []int64

func (h int64Heap) Len() int           { return len(h) }
func (h int64Heap) Less(i, j int) bool { return h[i] < h[j] }
func (h int64Heap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *int64Heap) Push(x any) {
	*h = append(*h, x.(int64))
}

func (h *int64Heap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
