package eventtime

import (
	"fmt"
	"time"
)

// Window is a half-open event-time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowFor returns the fixed-length window containing t. Windows are aligned
// to the epoch: a record at time t with length L lands in
// [floor(t/L)*L, floor(t/L)*L + L). End-of-window timestamps start the next
// window, never close the previous one.
func WindowFor(t time.Time, length time.Duration) Window {
	l := int64(length / time.Second)
	sec := t.Unix()
	// floored modulo so pre-epoch timestamps still round down
	start := sec - ((sec%l)+l)%l
	return Window{
		Start: time.Unix(start, 0).UTC(),
		End:   time.Unix(start+l, 0).UTC(),
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.Start.UTC().Format(time.RFC3339), w.End.UTC().Format(time.RFC3339))
}
