package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func utIrregularPoints() []PointF32 {
	// out-of-order within the slice, in-order regarding x and y
	return []PointF32{
		{X: 12, Y: 0},
		{X: 14, Y: 0.4},
		{X: 16, Y: 0.4}, // redundant
		{X: 20, Y: 0.4},
		{X: 30, Y: 0.7},
		{X: 13, Y: 0},
		{X: 40, Y: 1},
	}
}

func TestIrregularQueries(t *testing.T) {
	epsilon := 0.0001

	c := NewIrregularF32(utIrregularPoints())

	assert.EqualValues(t, 12, c.MinX())
	assert.EqualValues(t, 40, c.MaxX())

	// x outside of bounds
	assert.EqualValues(t, 0, c.YAtX(0))
	assert.EqualValues(t, 1, c.YAtX(100))

	// x equal to the actual points
	assert.InDelta(t, 0, c.YAtX(12), epsilon)
	assert.InDelta(t, 0, c.YAtX(13), epsilon)
	assert.InDelta(t, 0.4, c.YAtX(14), epsilon)
	assert.InDelta(t, 1, c.YAtX(40), epsilon)

	// arbitrary x values
	assert.InDelta(t, 0.55, c.YAtX(25), epsilon)
	assert.InDelta(t, 0.85, c.YAtX(35), epsilon)
	assert.InDelta(t, 0.2, c.YAtX(13.5), epsilon)
	assert.InDelta(t, 0.4, c.YAtX(15.5), epsilon)

	// y queries
	assert.InDelta(t, 12, c.XAtY(0), epsilon)
	assert.InDelta(t, 40, c.XAtY(1), epsilon)
	assert.GreaterOrEqual(t, c.XAtY(0.4), float32(14))
	assert.LessOrEqual(t, c.XAtY(0.4), float32(20))
	assert.InDelta(t, 30, c.XAtY(0.7), epsilon)
	assert.InDelta(t, 13.5, c.XAtY(0.2), epsilon)

	// index lookups clamp at the ends
	assert.EqualValues(t, 0, c.IndexAtX(5))
	assert.EqualValues(t, c.Len()-1, c.IndexAtX(50))
	assert.EqualValues(t, 0, c.IndexAtY(0))
	assert.EqualValues(t, c.Len()-1, c.IndexAtY(1))
	assert.EqualValues(t, 4, c.IndexAtX(25))
}

func TestIrregularRoundTrip(t *testing.T) {
	c := NewIrregularF32([]PointF32{
		{X: 0, Y: 0},
		{X: 4, Y: 0.3},
		{X: 9, Y: 0.8},
		{X: 20, Y: 1},
	})

	for _, x := range []float32{1, 4, 6.5, 12, 19} {
		assert.InDelta(t, x, c.XAtY(c.YAtX(x)), 1e-4)
	}
}

func TestIrregularAddPoint(t *testing.T) {
	c := NewIrregularF32(utIrregularPoints())

	c.AddPoint(35, 0.9)
	assert.EqualValues(t, 8, c.Len())
	assert.InDelta(t, 0.9, c.YAtX(35), 1e-4)
	assert.InDelta(t, 0.8, c.YAtX(32.5), 1e-4)

	assert.Panics(t, func() {
		c.AddPoint(35, 0.95) // duplicate x
	})
	assert.Panics(t, func() {
		c.AddPoint(36, 0.5) // breaks monotony
	})
	assert.Panics(t, func() {
		c.AddPoint(50, 1) // outside range
	})
}

func TestIrregularSimplify(t *testing.T) {
	c := NewIrregularF32(utIrregularPoints())
	c.AddPoint(35, 0.9)
	assert.EqualValues(t, 8, c.Len())

	// tolerance 0 only removes the point lying exactly on a chord
	c.Simplify(0)
	assert.EqualValues(t, 7, c.Len())

	for _, p := range c.Points() {
		assert.NotEqualValues(t, 16, p.X)
	}

	c.Simplify(0.1)
	assert.Less(t, c.Len(), 7)
}

func TestIrregularSimplifyKeepsRemainingPoints(t *testing.T) {
	c := NewIrregularF32(utIrregularPoints())

	before := map[float32]float32{}
	for _, p := range c.Points() {
		before[p.X] = c.YAtX(p.X)
	}

	c.Simplify(0)

	for _, p := range c.Points() {
		assert.InDelta(t, before[p.X], c.YAtX(p.X), 1e-5)
	}
}

func TestIrregularSimplifyFixed(t *testing.T) {
	points := []PointF32{
		{X: 0, Y: 0},
		{X: 200, Y: 1},
	}
	c := NewIrregularF32(points)

	y := float32(0)

	for x := float32(1); x <= 150; x++ {
		y += 1.0 / 200

		c.AddPoint(x, y)
	}

	original := c.Len()

	clone := c.Clone()
	clone.SimplifyFixed(10)
	assert.EqualValues(t, 10, clone.Len())

	// first and last point survive
	assert.EqualValues(t, c.MinX(), clone.MinX())
	assert.EqualValues(t, c.MaxX(), clone.MaxX())

	// a budget above the point count changes nothing
	clone = c.Clone()
	clone.SimplifyFixed(original + 10)
	assert.EqualValues(t, original, clone.Len())
}

func TestIrregularInvalid(t *testing.T) {
	assert.Panics(t, func() {
		// duplicate x
		NewIrregularF32([]PointF32{{X: 0, Y: 0}, {X: 0, Y: 0.5}, {X: 1, Y: 1}})
	})
	assert.Panics(t, func() {
		// decreasing y
		NewIrregularF32([]PointF32{{X: 0, Y: 0}, {X: 1, Y: 0.5}, {X: 2, Y: 0.4}, {X: 3, Y: 1}})
	})
	assert.Panics(t, func() {
		// first y not 0
		NewIrregularF32([]PointF32{{X: 0, Y: 0.2}, {X: 1, Y: 1}})
	})
	assert.Panics(t, func() {
		// last y not 1
		NewIrregularF32([]PointF32{{X: 0, Y: 0}, {X: 1, Y: 0.9}})
	})
}

func TestIrregularSnap(t *testing.T) {
	c := NewIrregularF32([]PointF32{{X: 0, Y: 0.00005}, {X: 1, Y: 0.99995}})

	assert.EqualValues(t, 0, c.YAtX(0))
	assert.EqualValues(t, 1, c.YAtX(1))
}

func TestIrregularString(t *testing.T) {
	c := NewIrregularF32(utIrregularPoints())

	assert.Contains(t, c.String(), "with 7 points")
}
