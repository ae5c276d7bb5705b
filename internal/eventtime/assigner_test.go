package eventtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssigner_WatermarkLagsMaxEventTime(t *testing.T) {
	t.Parallel()

	a := NewAssigner(10 * time.Second)

	wm := a.Observe(time.Unix(1000, 0))
	assert.Equal(t, time.Unix(990, 0).UTC(), wm.Time().UTC())
}

func TestAssigner_OlderEventDoesNotRollBack(t *testing.T) {
	t.Parallel()

	a := NewAssigner(10 * time.Second)

	a.Observe(time.Unix(1000, 0))
	wm := a.Observe(time.Unix(900, 0))

	assert.Equal(t, time.Unix(990, 0).UTC(), wm.Time().UTC())
	assert.Equal(t, time.Unix(990, 0).UTC(), a.Current().Time().UTC())
}

func TestAssigner_AdvancesWithMaxSeen(t *testing.T) {
	t.Parallel()

	a := NewAssigner(10 * time.Second)

	a.Observe(time.Unix(1000, 0))
	a.Observe(time.Unix(995, 0))
	wm := a.Observe(time.Unix(1020, 0))

	assert.Equal(t, time.Unix(1010, 0).UTC(), wm.Time().UTC())
}

func TestAssigner_InitialWatermarkBeforeAnyObservation(t *testing.T) {
	t.Parallel()

	a := NewAssigner(10 * time.Second)
	assert.Equal(t, InitialWatermark.UnixMilli(), a.Current().UnixMilli())
}

func TestAssigner_ZeroLateness(t *testing.T) {
	t.Parallel()

	a := NewAssigner(0)

	wm := a.Observe(time.Unix(1000, 0))
	assert.Equal(t, time.Unix(1000, 0).UTC(), wm.Time().UTC())
}

func TestAssigner_ConcurrentObserversStayMonotonic(t *testing.T) {
	t.Parallel()

	a := NewAssigner(10 * time.Second)

	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func(offset int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 1000; i++ {
				a.Observe(time.Unix(int64(1000+i+offset), 0))
			}
		}(g)
	}

	last := a.Current().UnixMilli()
	for i := 0; i < 4; i++ {
		<-done
		cur := a.Current().UnixMilli()
		assert.GreaterOrEqual(t, cur, last)
		last = cur
	}

	// max observed is 1000+999+3, watermark lags it by 10s
	assert.Equal(t, time.Unix(1992, 0).UTC(), a.Current().Time().UTC())
	close(done)
}
