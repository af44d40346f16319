package curve

// Point is one stored breakpoint of an irregular curve.
type Point[X, Y any] struct {
	X X `yaml:"x"`
	Y Y `yaml:"y"`
}

// PointF32 is a breakpoint in canonical float32 space.
type PointF32 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// SetEntry is one keyed curve of a CurveSet.
type SetEntry[K any, C Curve] struct {
	Key   K
	Curve C
}
