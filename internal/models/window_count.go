package models

import "time"

// WindowCount is the per-path request count for one closed window.
// WindowEnd is the exclusive end of the window the count belongs to.
type WindowCount struct {
	RequestPath string
	WindowEnd   time.Time
	Count       int64
}
