package curve

import (
	"fmt"
	"math"
)

// Regular is a curve whose samples sit at uniform domain distances: the
// i-th sample describes the range value at x0 + i*step. Lookups are
// plain index arithmetic, so YAtX is O(1); XAtY scans forward, which is
// fine for the small sample counts this representation is used with.
type Regular[X, Y any, XC Conv[X], YC Conv[Y]] struct {
	xc XC
	yc YC

	x0   X
	step X
	ys   []Y
}

// RegularF32 is the common all-float32 instantiation.
type RegularF32 = Regular[float32, float32, F32Conv, F32Conv]

func NewRegularF32(step, x0 float32, ys []float32) *RegularF32 {
	return NewRegular[float32, float32, F32Conv, F32Conv](F32Conv{}, F32Conv{}, step, x0, ys)
}

// NewRegular builds a fixed-step curve from canonical float32 inputs,
// converting them into the storage types on the way in.
func NewRegular[X, Y any, XC Conv[X], YC Conv[Y]](xc XC, yc YC, step, x0 float32, ys []float32) *Regular[X, Y, XC, YC] {
	tys := make([]Y, 0, len(ys))
	for _, y := range ys {
		tys = append(tys, yc.FromF32(y))
	}

	return NewRegularTyped[X, Y, XC, YC](xc, yc, xc.FromF32(step), xc.FromF32(x0), tys)
}

// NewRegularTyped builds a fixed-step curve from samples already in
// their storage types.
func NewRegularTyped[X, Y any, XC Conv[X], YC Conv[Y]](xc XC, yc YC, step, x0 X, ys []Y) *Regular[X, Y, XC, YC] {
	if len(ys) < 2 {
		panic("regular curve needs at least two samples")
	}

	return &Regular[X, Y, XC, YC]{
		xc:   xc,
		yc:   yc,
		x0:   x0,
		step: step,
		ys:   ys,
	}
}

func (c *Regular[X, Y, XC, YC]) Len() int {
	return len(c.ys)
}

func (c *Regular[X, Y, XC, YC]) MinX() float32 {
	return c.xc.ToF32(c.x0)
}

func (c *Regular[X, Y, XC, YC]) MaxX() float32 {
	return c.MinX() + c.xc.ToF32(c.step)*float32(len(c.ys)-1)
}

// YAtX interpolates linearly between the two samples bracketing x,
// clamping to the first/last sample outside the curve's range.
func (c *Regular[X, Y, XC, YC]) YAtX(x float32) float32 {
	if x <= c.MinX() {
		return c.yc.ToF32(c.ys[0])
	}

	if x >= c.MaxX() {
		return c.yc.ToF32(c.ys[len(c.ys)-1])
	}

	i := (x - c.MinX()) / c.xc.ToF32(c.step)

	iMin := int(math.Floor(float64(i)))
	iMax := int(math.Ceil(float64(i)))

	if iMin == iMax {
		return c.yc.ToF32(c.ys[iMin])
	}

	a := i - float32(iMin)

	return c.yc.ToF32(c.ys[iMin])*(1-a) + c.yc.ToF32(c.ys[iMax])*a
}

// XAtY scans forward for the sample pair bracketing y and interpolates
// the domain position. When multiple consecutive samples share the
// value y, the first matching position is returned.
//
// y must be within [0, 1].
func (c *Regular[X, Y, XC, YC]) XAtY(y float32) float32 {
	if y < 0 || y > 1 {
		panic(fmt.Sprintf("y value %v out of range [0, 1]", y))
	}

	if y == 0 {
		return c.MinX()
	}

	if y == 1 {
		return c.MaxX()
	}

	step := c.xc.ToF32(c.step)

	for i := range c.ys {
		vr := c.yc.ToF32(c.ys[i])
		if vr == y {
			return c.MinX() + float32(i)*step
		}

		if vr > y {
			if i == 0 {
				panic("curve does not start at y = 0")
			}

			vl := c.yc.ToF32(c.ys[i-1])
			a := (y - vl) / (vr - vl)

			return c.MinX() + (float32(i-1)+a)*step
		}
	}

	panic(fmt.Sprintf("no sample pair brackets y = %v", y))
}

func (c *Regular[X, Y, XC, YC]) Points() []PointF32 {
	step := c.xc.ToF32(c.step)

	ps := make([]PointF32, 0, len(c.ys))
	for i, y := range c.ys {
		ps = append(ps, PointF32{
			X: c.MinX() + float32(i)*step,
			Y: c.yc.ToF32(y),
		})
	}

	return ps
}

func (c *Regular[X, Y, XC, YC]) XValues() []float32 {
	step := c.xc.ToF32(c.step)

	xs := make([]float32, 0, len(c.ys))
	for i := range c.ys {
		xs = append(xs, c.MinX()+float32(i)*step)
	}

	return xs
}

//
// typed accessors
//

func (c *Regular[X, Y, XC, YC]) TypedMinX() X {
	return c.x0
}

func (c *Regular[X, Y, XC, YC]) TypedMaxX() X {
	return c.xc.FromF32(c.MaxX())
}

func (c *Regular[X, Y, XC, YC]) TypedYAtX(x X) Y {
	return c.yc.FromF32(c.YAtX(c.xc.ToF32(x)))
}

func (c *Regular[X, Y, XC, YC]) TypedXAtY(y Y) X {
	return c.xc.FromF32(c.XAtY(c.yc.ToF32(y)))
}
