package aggregators

import "hotpath-analytics/internal/models"

// CountAccumulator is the per-(path, window) aggregation state: a request
// count under addition. The zero value is the identity, Add folds in one
// record, Merge folds in another partial count. Merge is commutative and
// associative, so partial counts combine to the same total in any order and
// grouping.
type CountAccumulator struct {
	count int64
}

func NewCountAccumulator() *CountAccumulator {
	return &CountAccumulator{}
}

// Add folds one record into the accumulator. Counting only cares that a
// request happened, not what it was.
func (a *CountAccumulator) Add(_ *models.AccessRecord) {
	a.count++
}

// Merge folds another partial accumulator into this one.
func (a *CountAccumulator) Merge(other *CountAccumulator) {
	a.count += other.count
}

// Count returns the accumulated total.
func (a *CountAccumulator) Count() int64 {
	return a.count
}
