package events

import (
	"hotpath-analytics/internal/eventtime"
	"hotpath-analytics/internal/models"
)

// AccessEvent is one element of the record stream. A set Record carries a
// parsed access record; a nil Record makes the element a pure watermark
// boundary. Watermark is authoritative on boundaries and advisory on records
// (the producer's watermark at publish time).
type AccessEvent struct {
	Record    *models.AccessRecord
	Watermark eventtime.Watermark
}

// IsBoundary reports whether the element only carries watermark progress.
func (e AccessEvent) IsBoundary() bool {
	return e.Record == nil
}
