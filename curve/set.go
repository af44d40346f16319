package curve

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

// CurveSet is an ordered sequence of (key, curve) pairs with strictly
// increasing keys, used when curves vary by an external parameter such
// as a route or the time of day. Queries interpolate "between curves"
// by weighted-averaging the two curves bracketing the requested key.
type CurveSet[K any, KC Conv[K], C Curve] struct {
	kc KC

	entries []SetEntry[K, C]
}

// CurveSetF32 is the common instantiation: float32 keys over breakpoint
// curves.
type CurveSetF32 = CurveSet[float32, F32Conv, *IrregularF32]

func NewCurveSetF32() *CurveSetF32 {
	return NewCurveSet[float32, F32Conv, *IrregularF32](F32Conv{})
}

func NewCurveSet[K any, KC Conv[K], C Curve](kc KC) *CurveSet[K, KC, C] {
	return &CurveSet[K, KC, C]{
		kc: kc,
	}
}

func (s *CurveSet[K, KC, C]) Len() int {
	return len(s.entries)
}

func (s *CurveSet[K, KC, C]) Entries() []SetEntry[K, C] {
	return s.entries
}

func (s *CurveSet[K, KC, C]) MinX() float32 {
	return s.kc.ToF32(s.entries[0].Key)
}

func (s *CurveSet[K, KC, C]) MaxX() float32 {
	return s.kc.ToF32(s.entries[len(s.entries)-1].Key)
}

// AddCurve inserts a curve at its sorted key position. Panics on a
// duplicate key.
func (s *CurveSet[K, KC, C]) AddCurve(key K, c C) {
	kf := s.kc.ToF32(key)

	idx := len(s.entries)

	for i, e := range s.entries {
		ef := s.kc.ToF32(e.Key)

		if ef == kf {
			panic(fmt.Sprintf("duplicate key: %v", kf))
		}

		if kf < ef {
			idx = i

			break
		}
	}

	s.entries = append(s.entries, SetEntry[K, C]{})
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = SetEntry[K, C]{Key: key, Curve: c}
}

// searchByX locates the two entries bracketing x and returns their
// weighted average, with weights taken from the fractional position of
// x between the two keys. When x lies outside the stored key range the
// interpolation factor leaves [0, 1] and the result is a linear
// extrapolation from the two nearest curves.
func (s *CurveSet[K, KC, C]) searchByX(x float32, start, end int) *IrregularF32 {
	if start+1 == end {
		l := s.entries[start]
		r := s.entries[end]
		a := (x - s.kc.ToF32(l.Key)) / (s.kc.ToF32(r.Key) - s.kc.ToF32(l.Key))

		return WeightedAverage([]Curve{l.Curve, r.Curve}, []float32{1 - a, a})
	}

	mid := (start + end) / 2
	if x < s.kc.ToF32(s.entries[mid].Key) {
		return s.searchByX(x, start, mid)
	}

	return s.searchByX(x, mid, end)
}

// CurveAtXWithExtrapolation returns the curve corresponding to the
// given key, interpolating between the two bracketing curves. Outside
// the stored key range it extrapolates linearly from the two nearest
// curves.
//
// Extrapolation can produce range values outside [0, 1] for keys far
// from the stored range, which the result constructor rejects. Callers
// that cannot rule this out should use CurveAtXWithContinuation.
func (s *CurveSet[K, KC, C]) CurveAtXWithExtrapolation(x float32) *IrregularF32 {
	return s.searchByX(x, 0, len(s.entries)-1)
}

// CurveAtXWithContinuation returns the curve corresponding to the given
// key. At or outside the bounds it returns the boundary curve itself
// (normalized to a breakpoint curve); otherwise the two bracketing
// curves are interpolated.
func (s *CurveSet[K, KC, C]) CurveAtXWithContinuation(x float32) *IrregularF32 {
	if x <= s.MinX() {
		return WeightedAverage([]Curve{s.entries[0].Curve}, []float32{1})
	}

	if x >= s.MaxX() {
		return WeightedAverage([]Curve{s.entries[len(s.entries)-1].Curve}, []float32{1})
	}

	return s.searchByX(x, 0, len(s.entries)-1)
}

// CurveAtX returns the curve corresponding to the given key,
// interpolating between the two bracketing curves. At or outside the
// bounds it returns commerr.ErrOutOfRange.
func (s *CurveSet[K, KC, C]) CurveAtX(x float32) (*IrregularF32, error) {
	if x <= s.MinX() || x >= s.MaxX() {
		return nil, commerr.ErrOutOfRange
	}

	return s.searchByX(x, 0, len(s.entries)-1), nil
}
