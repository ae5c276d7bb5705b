package eventtime

import (
	"time"

	"go.uber.org/atomic"
)

// Assigner tracks the maximum event time observed across all sources and
// derives the pipeline watermark from it:
//
//	W = maxEventTimeSeen - allowedLateness
//
// Both cells only move forward, so the watermark never rolls back even when
// records arrive out of order or when multiple sources observe concurrently.
// Reads are lock-free; the HTTP progress endpoint polls Current directly.
type Assigner struct {
	allowedLateness time.Duration

	maxSeen *atomic.Int64 // unix millis of the max event time observed
	current *atomic.Int64 // unix millis of the published watermark
}

func NewAssigner(allowedLateness time.Duration) *Assigner {
	a := &Assigner{
		allowedLateness: allowedLateness,
		maxSeen:         atomic.NewInt64(InitialWatermark.UnixMilli()),
		current:         atomic.NewInt64(InitialWatermark.UnixMilli()),
	}
	return a
}

// Observe registers one record's event time and returns the watermark after
// the observation. Older event times leave both cells untouched.
func (a *Assigner) Observe(eventTime time.Time) Watermark {
	ts := eventTime.UnixMilli()
	for {
		seen := a.maxSeen.Load()
		if ts <= seen {
			return a.Current()
		}
		if a.maxSeen.CompareAndSwap(seen, ts) {
			a.advance(ts - a.allowedLateness.Milliseconds())
			return a.Current()
		}
	}
}

// Current returns the published watermark.
func (a *Assigner) Current() Watermark {
	return Watermark(time.UnixMilli(a.current.Load()))
}

func (a *Assigner) advance(wm int64) {
	for {
		cur := a.current.Load()
		if wm <= cur || a.current.CompareAndSwap(cur, wm) {
			return
		}
	}
}
