package aggregators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotpath-analytics/internal/models"
)

func testRecord(path string) *models.AccessRecord {
	return &models.AccessRecord{
		ClientIP:    "10.0.0.1",
		EventTime:   time.Unix(1000, 0),
		RequestPath: path,
		StatusCode:  "200",
	}
}

func accumulatorOf(n int) *CountAccumulator {
	a := NewCountAccumulator()
	for i := 0; i < n; i++ {
		a.Add(testRecord("/"))
	}
	return a
}

func TestCountAccumulator_ZeroValueIsIdentity(t *testing.T) {
	t.Parallel()

	a := accumulatorOf(5)
	a.Merge(NewCountAccumulator())
	assert.Equal(t, int64(5), a.Count())

	b := NewCountAccumulator()
	b.Merge(accumulatorOf(5))
	assert.Equal(t, int64(5), b.Count())
}

func TestCountAccumulator_AddIncrements(t *testing.T) {
	t.Parallel()

	a := NewCountAccumulator()
	assert.Equal(t, int64(0), a.Count())

	a.Add(testRecord("/a"))
	a.Add(testRecord("/b"))
	assert.Equal(t, int64(2), a.Count())
}

func TestCountAccumulator_MergeIsCommutative(t *testing.T) {
	t.Parallel()

	left := accumulatorOf(2)
	left.Merge(accumulatorOf(3))

	right := accumulatorOf(3)
	right.Merge(accumulatorOf(2))

	assert.Equal(t, left.Count(), right.Count())
	assert.Equal(t, int64(5), left.Count())
}

func TestCountAccumulator_MergeIsAssociative(t *testing.T) {
	t.Parallel()

	// (a + b) + c
	ab := accumulatorOf(2)
	ab.Merge(accumulatorOf(3))
	ab.Merge(accumulatorOf(5))

	// a + (b + c)
	bc := accumulatorOf(3)
	bc.Merge(accumulatorOf(5))
	a := accumulatorOf(2)
	a.Merge(bc)

	assert.Equal(t, ab.Count(), a.Count())
	assert.Equal(t, int64(10), ab.Count())
}

func TestCountAccumulator_SplitAndMergeMatchesSequential(t *testing.T) {
	t.Parallel()

	sequential := accumulatorOf(7)

	split := accumulatorOf(4)
	split.Merge(accumulatorOf(3))

	assert.Equal(t, sequential.Count(), split.Count())
}
