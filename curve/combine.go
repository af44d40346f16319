package curve

import "math"

// mergedXValues performs a k-way merge of the (already sorted)
// breakpoint lists of all curves, dropping duplicates. No new
// breakpoints are invented.
func mergedXValues(curves []Curve) []float32 {
	lists := make([][]float32, 0, len(curves))
	total := 0

	for _, c := range curves {
		xs := c.XValues()
		lists = append(lists, xs)
		total += len(xs)
	}

	heads := make([]int, len(lists))
	out := make([]float32, 0, total)

	for {
		best := -1

		var bestV float32

		for i, l := range lists {
			if heads[i] >= len(l) {
				continue
			}

			if best < 0 || l[heads[i]] < bestV {
				best = i
				bestV = l[heads[i]]
			}
		}

		if best < 0 {
			break
		}

		heads[best]++

		if len(out) == 0 || out[len(out)-1] != bestV {
			out = append(out, bestV)
		}
	}

	return out
}

// WeightedAverage combines any number of curves into a new breakpoint
// curve: every curve is evaluated at the union of all curves' domain
// breakpoints and the weighted range values are accumulated, normalized
// by the weight sum. The result is reduced with Simplify(0) so that
// points made redundant by the averaging are dropped again.
//
// Panics when the number of curves and weights differ.
func WeightedAverage(curves []Curve, weights []float32) *IrregularF32 {
	if len(curves) != len(weights) {
		panic("number of curves and weights must be the same")
	}

	var weightSum float32

	for _, w := range weights {
		weightSum += w
	}

	f := 1 / weightSum

	xs := mergedXValues(curves)

	points := make([]PointF32, 0, len(xs))

	for _, x := range xs {
		var y float32

		for i, c := range curves {
			y += c.YAtX(x) * weights[i]
		}

		points = append(points, PointF32{X: x, Y: y * f})
	}

	ret := NewIrregularF32(points)
	ret.Simplify(0)

	return ret
}

// Average combines curves with equal weights.
func Average(curves []Curve) *IrregularF32 {
	weights := make([]float32, len(curves))
	for i := range weights {
		weights[i] = 1
	}

	return WeightedAverage(curves, weights)
}

// Distance measures how far two curves are apart as the area enclosed
// between their graphs. Between two consecutive breakpoints the area is
// an ordinary trapezoid when the difference keeps its sign, and a
// self-intersecting trapezoid (two triangles around the crossing point)
// when it changes sign.
func Distance(a, b Curve) float32 {
	xs := mergedXValues([]Curve{a, b})

	var total float32

	for i := 0; i+1 < len(xs); i++ {
		x1 := xs[i]
		x2 := xs[i+1]

		d1 := a.YAtX(x1) - b.YAtX(x1)
		d2 := a.YAtX(x2) - b.YAtX(x2)

		h := x2 - x1
		p := float32(math.Abs(float64(d1)))
		q := float32(math.Abs(float64(d2)))

		if d1*d2 >= 0 {
			total += (p + q) * h / 2
		} else {
			total += h / 2 * (p*p + q*q) / (p + q)
		}
	}

	return total
}
