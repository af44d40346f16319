package curve

import "math"

// normal returns a normal vector of the line through a and b.
func normal(a, b PointF32) (float32, float32) {
	return a.Y - b.Y, b.X - a.X
}

// perpDistance returns the distance of p to the line through s with
// normal vector (nx, ny).
func perpDistance(s, p PointF32, nx, ny float32) float32 {
	d := ((p.X-s.X)*nx + (p.Y-s.Y)*ny) / float32(math.Sqrt(float64(nx*nx+ny*ny)))

	return float32(math.Abs(float64(d)))
}

// tripleDistance returns the perpendicular distance of b to the chord
// from a to c, i.e. how much b contributes to the curve's shape.
func tripleDistance(a, b, c PointF32) float32 {
	nx, ny := normal(a, c)

	return perpDistance(a, b, nx, ny)
}

// Simplify removes points whose perpendicular distance to the chord of
// their enclosing range is at most tol, recursively splitting the range
// at the most distant point (Douglas-Peucker). A tolerance of 0 only
// removes points lying exactly on the chord. Ranges of fewer than three
// points are left untouched.
func (c *Irregular[X, Y, XC, YC]) Simplify(tol float32) {
	if len(c.points) < 3 {
		return
	}

	drop := make([]bool, len(c.points))
	c.simplifyRange(tol, 0, len(c.points)-1, drop)

	kept := make([]Point[X, Y], 0, len(c.points))
	for i, p := range c.points {
		if !drop[i] {
			kept = append(kept, p)
		}
	}

	c.points = kept
}

func (c *Irregular[X, Y, XC, YC]) simplifyRange(tol float32, start, end int, drop []bool) {
	if end-start < 2 {
		return
	}

	s := c.pointF32(start)
	e := c.pointF32(end)
	nx, ny := normal(s, e)

	maxD := float32(-1)
	maxI := 0

	for i := start + 1; i < end; i++ {
		d := perpDistance(s, c.pointF32(i), nx, ny)
		if d > maxD {
			maxD = d
			maxI = i
		}
	}

	if maxD <= tol {
		for i := start + 1; i < end; i++ {
			drop[i] = true
		}

		return
	}

	c.simplifyRange(tol, start, maxI, drop)
	c.simplifyRange(tol, maxI, end, drop)
}

// SimplifyFixed removes points until at most maxPoints remain, at each
// step deleting the middle point of the consecutive triple that
// contributes least to the curve's shape. The first minimal triple
// wins ties; the first and last point always survive.
func (c *Irregular[X, Y, XC, YC]) SimplifyFixed(maxPoints int) {
	for len(c.points) > maxPoints && len(c.points) > 2 {
		minI := 1
		minD := float32(math.MaxFloat32)

		for i := 0; i+2 < len(c.points); i++ {
			d := tripleDistance(c.pointF32(i), c.pointF32(i+1), c.pointF32(i+2))
			if d < minD {
				minD = d
				minI = i + 1
			}
		}

		c.points = append(c.points[:minI], c.points[minI+1:]...)
	}
}
