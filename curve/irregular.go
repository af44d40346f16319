package curve

import (
	"fmt"
	"math"
	"sort"
)

// snapEpsilon is the tolerance within which the first/last range value
// of a breakpoint curve is snapped to exactly 0 / 1 on construction.
const snapEpsilon = 1e-4

// Irregular is a curve defined by breakpoints at arbitrary domain
// positions. Points are kept sorted by strictly increasing x with
// non-decreasing y; the first point defines y = 0 and the last y = 1.
// Queries bisect the point list and interpolate linearly between the
// two bracketing points.
type Irregular[X, Y any, XC Conv[X], YC Conv[Y]] struct {
	xc XC
	yc YC

	points []Point[X, Y]
}

// IrregularF32 is the common all-float32 instantiation.
type IrregularF32 = Irregular[float32, float32, F32Conv, F32Conv]

func NewIrregularF32(points []PointF32) *IrregularF32 {
	tps := make([]Point[float32, float32], 0, len(points))
	for _, p := range points {
		tps = append(tps, Point[float32, float32]{X: p.X, Y: p.Y})
	}

	return NewIrregular[float32, float32, F32Conv, F32Conv](F32Conv{}, F32Conv{}, tps)
}

// NewIrregular builds a breakpoint curve from an unordered point list.
// The points are sorted by x, the outermost range values are snapped to
// exactly 0 / 1 when within snapEpsilon, and the curve invariants are
// validated. Invalid input panics.
func NewIrregular[X, Y any, XC Conv[X], YC Conv[Y]](xc XC, yc YC, points []Point[X, Y]) *Irregular[X, Y, XC, YC] {
	if len(points) < 2 {
		panic("irregular curve needs at least two points")
	}

	sort.SliceStable(points, func(i, j int) bool {
		return xc.ToF32(points[i].X) < xc.ToF32(points[j].X)
	})

	if math.Abs(float64(yc.ToF32(points[0].Y))) < snapEpsilon {
		points[0].Y = yc.FromF32(0)
	}

	last := len(points) - 1
	if math.Abs(float64(yc.ToF32(points[last].Y)-1)) < snapEpsilon {
		points[last].Y = yc.FromF32(1)
	}

	c := &Irregular[X, Y, XC, YC]{
		xc:     xc,
		yc:     yc,
		points: points,
	}

	c.check()

	return c
}

func (c *Irregular[X, Y, XC, YC]) check() {
	if c.yc.ToF32(c.points[0].Y) != 0 {
		panic("first point does not define y = 0")
	}

	if c.yc.ToF32(c.points[len(c.points)-1].Y) != 1 {
		panic("last point does not define y = 1")
	}

	for i := 0; i < len(c.points)-1; i++ {
		l := c.points[i]
		r := c.points[i+1]

		if c.xc.ToF32(l.X) >= c.xc.ToF32(r.X) {
			panic("unsorted or duplicate x values")
		}

		if c.yc.ToF32(l.Y) > c.yc.ToF32(r.Y) {
			panic("y does not increase monotonously for increasing x")
		}
	}
}

func (c *Irregular[X, Y, XC, YC]) Len() int {
	return len(c.points)
}

// Clone returns a deep copy sharing no point storage with c.
func (c *Irregular[X, Y, XC, YC]) Clone() *Irregular[X, Y, XC, YC] {
	points := make([]Point[X, Y], len(c.points))
	copy(points, c.points)

	return &Irregular[X, Y, XC, YC]{
		xc:     c.xc,
		yc:     c.yc,
		points: points,
	}
}

func (c *Irregular[X, Y, XC, YC]) pointF32(i int) PointF32 {
	return PointF32{
		X: c.xc.ToF32(c.points[i].X),
		Y: c.yc.ToF32(c.points[i].Y),
	}
}

func (c *Irregular[X, Y, XC, YC]) searchByX(x float32, start, end int) (int, float32) {
	if start+1 == end {
		l := c.pointF32(start)
		r := c.pointF32(end)
		a := (x - l.X) / (r.X - l.X)

		return start, l.Y*(1-a) + r.Y*a
	}

	mid := (start + end) / 2
	if x < c.xc.ToF32(c.points[mid].X) {
		return c.searchByX(x, start, mid)
	}

	return c.searchByX(x, mid, end)
}

func (c *Irregular[X, Y, XC, YC]) searchByY(y float32, start, end int) (int, float32) {
	if start+1 == end {
		l := c.pointF32(start)
		r := c.pointF32(end)
		a := (y - l.Y) / (r.Y - l.Y)

		return start, l.X*(1-a) + r.X*a
	}

	mid := (start + end) / 2
	if y < c.yc.ToF32(c.points[mid].Y) {
		return c.searchByY(y, start, mid)
	}

	return c.searchByY(y, mid, end)
}

// IndexAtX returns the index of the point at or directly left of x,
// clamped to the first/last index outside the curve's range.
func (c *Irregular[X, Y, XC, YC]) IndexAtX(x float32) int {
	if x <= c.MinX() {
		return 0
	}

	if x >= c.MaxX() {
		return len(c.points) - 1
	}

	i, _ := c.searchByX(x, 0, len(c.points)-1)

	return i
}

// IndexAtY returns the index of the point at or directly below y,
// clamped to the first/last index outside [0, 1].
func (c *Irregular[X, Y, XC, YC]) IndexAtY(y float32) int {
	if y <= 0 {
		return 0
	}

	if y >= 1 {
		return len(c.points) - 1
	}

	i, _ := c.searchByY(y, 0, len(c.points)-1)

	return i
}

func (c *Irregular[X, Y, XC, YC]) MinX() float32 {
	return c.xc.ToF32(c.points[0].X)
}

func (c *Irregular[X, Y, XC, YC]) MaxX() float32 {
	return c.xc.ToF32(c.points[len(c.points)-1].X)
}

// YAtX clamps to 0 below MinX and 1 above MaxX, otherwise it
// interpolates between the two bracketing points.
func (c *Irregular[X, Y, XC, YC]) YAtX(x float32) float32 {
	if x <= c.MinX() {
		return 0
	}

	if x >= c.MaxX() {
		return 1
	}

	_, y := c.searchByX(x, 0, len(c.points)-1)

	return y
}

// XAtY inverts the curve. When multiple consecutive points share the
// value y, the first matching position is returned.
//
// y must be within [0, 1].
func (c *Irregular[X, Y, XC, YC]) XAtY(y float32) float32 {
	if y < 0 || y > 1 {
		panic(fmt.Sprintf("y value %v out of range [0, 1]", y))
	}

	if y == 0 {
		return c.MinX()
	}

	if y == 1 {
		return c.MaxX()
	}

	_, x := c.searchByY(y, 0, len(c.points)-1)

	return x
}

func (c *Irregular[X, Y, XC, YC]) Points() []PointF32 {
	ps := make([]PointF32, 0, len(c.points))
	for i := range c.points {
		ps = append(ps, c.pointF32(i))
	}

	return ps
}

func (c *Irregular[X, Y, XC, YC]) XValues() []float32 {
	xs := make([]float32, 0, len(c.points))
	for _, p := range c.points {
		xs = append(xs, c.xc.ToF32(p.X))
	}

	return xs
}

// AddPoint inserts a breakpoint at its sorted position. It panics when
// x duplicates an existing domain value, lies outside the curve's
// range, or the new point would break monotonicity with a neighbor.
func (c *Irregular[X, Y, XC, YC]) AddPoint(x, y float32) {
	if x < c.MinX() || x > c.MaxX() {
		panic(fmt.Sprintf("point x = %v outside curve range", x))
	}

	for i := range c.points {
		px := c.xc.ToF32(c.points[i].X)
		if px == x {
			panic(fmt.Sprintf("duplicate x value: %v", x))
		}

		if x > px && x < c.xc.ToF32(c.points[i+1].X) {
			if y < c.yc.ToF32(c.points[i].Y) || y > c.yc.ToF32(c.points[i+1].Y) {
				panic(fmt.Sprintf("new point %v,%v breaks monotony", x, y))
			}

			c.points = append(c.points, Point[X, Y]{})
			copy(c.points[i+2:], c.points[i+1:])
			c.points[i+1] = Point[X, Y]{X: c.xc.FromF32(x), Y: c.yc.FromF32(y)}

			return
		}
	}
}

// String summarizes the curve through a few inverse-query percentiles.
func (c *Irregular[X, Y, XC, YC]) String() string {
	return fmt.Sprintf("IrregularCurve (min=%5d, 5%%=%5d, med=%5d, 95%%=%5d, max=%5d) with %d points",
		int(c.XAtY(0)), int(c.XAtY(0.05)), int(c.XAtY(0.5)), int(c.XAtY(0.95)), int(c.XAtY(1)), len(c.points))
}
