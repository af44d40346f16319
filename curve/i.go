package curve

// Curve is the query surface shared by every curve representation. All
// values cross this interface as float32, irrespective of the types a
// curve uses internally to store its samples.
//
// A curve maps a monotonic domain (typically elapsed time) to a
// cumulative fraction in [0, 1].
type Curve interface {
	MinX() float32
	MaxX() float32
	YAtX(x float32) float32
	XAtY(y float32) float32
	Points() []PointF32
	XValues() []float32
}

// TypedCurve exposes the same queries in the storage types themselves.
type TypedCurve[X, Y any] interface {
	TypedMinX() X
	TypedMaxX() X
	TypedYAtX(x X) Y
	TypedXAtY(y Y) X
}

// Storage persists serialized curves by key.
type Storage interface {
	Save(key string, data []byte) error
	Load(key string) (data []byte, err error)
}

// SerdeFormat selects the wire format used when a curve or a curve set
// is persisted.
type SerdeFormat int

const (
	// FormatYAML is the human-readable format.
	FormatYAML SerdeFormat = iota
	// FormatCompact is the fixed-size quantized binary format. Only
	// individual breakpoint curves support it.
	FormatCompact
)

// Ext returns the file extension used for single-file persistence in
// this format.
func (f SerdeFormat) Ext() string {
	if f == FormatCompact {
		return "icrv"
	}

	return "yaml"
}
