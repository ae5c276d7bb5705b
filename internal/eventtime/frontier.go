package eventtime

import "time"

// Frontier tracks the watermark last reported by each upstream partition and
// exposes their minimum. A consumer partition may only act on event time t
// once every upstream has reported a watermark >= t; until an upstream reports
// at all, its slot stays at InitialWatermark and holds the frontier down.
//
// Not safe for concurrent use. Each consumer partition owns exactly one
// Frontier and updates it from its own worker goroutine.
type Frontier struct {
	slots []Watermark
}

func NewFrontier(upstreams int) *Frontier {
	f := &Frontier{slots: make([]Watermark, upstreams)}
	for i := range f.slots {
		f.slots[i] = InitialWatermark
	}
	return f
}

// Update raises the slot for the given upstream and returns the new minimum.
// Regressing reports are ignored; watermarks only move forward.
func (f *Frontier) Update(upstream int, wm Watermark) Watermark {
	if upstream >= 0 && upstream < len(f.slots) && wm.AfterWatermark(f.slots[upstream]) {
		f.slots[upstream] = wm
	}
	return f.Min()
}

// Min returns the lowest watermark across all upstream partitions.
func (f *Frontier) Min() Watermark {
	min := f.slots[0]
	for _, wm := range f.slots[1:] {
		if time.Time(wm).Before(time.Time(min)) {
			min = wm
		}
	}
	return min
}
