package eventtime

import "time"

// Watermark is the monotonically increasing event-time progress marker. A
// watermark W asserts that no record with event time < W will be accepted into
// the pipeline after W was published.
type Watermark time.Time

// InitialWatermark is the value before any record has been observed.
var InitialWatermark = Watermark(time.UnixMilli(-1))

// MaxWatermark marks end of input. Publishing it closes every open window and
// fires every pending timer.
var MaxWatermark = Watermark(time.Unix(1<<48, 0))

func (w Watermark) Time() time.Time {
	return time.Time(w)
}

func (w Watermark) String() string {
	return time.Time(w).UTC().Format(time.RFC3339Nano)
}

func (w Watermark) UnixMilli() int64 {
	return time.Time(w).UnixMilli()
}

func (w Watermark) After(t time.Time) bool {
	return time.Time(w).After(t)
}

func (w Watermark) Before(t time.Time) bool {
	return time.Time(w).Before(t)
}

func (w Watermark) AfterWatermark(compare Watermark) bool {
	return w.After(time.Time(compare))
}
