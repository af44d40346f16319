package curve

import (
	"math"

	"github.com/x448/float16"
)

// Conv converts one concrete sample type to and from the canonical
// float32 all curve math is performed in. Conversions are total: narrow
// types saturate or truncate at the limits of their representable range
// instead of failing.
type Conv[T any] interface {
	ToF32(v T) float32
	FromF32(v float32) T
}

// F32Conv is the trivial converter for float32 samples.
type F32Conv struct{}

func (F32Conv) ToF32(v float32) float32 { return v }

func (F32Conv) FromF32(v float32) float32 { return v }

// UFrac8 is an unsigned Q1.7 fixed point fraction: value = raw / 128,
// representable range [0, 255/128] with a resolution of 1/128.
type UFrac8 uint8

// UFrac8Conv converts UFrac8 samples, rounding to the nearest
// representable fraction.
type UFrac8Conv struct{}

func (UFrac8Conv) ToF32(v UFrac8) float32 { return float32(v) / 128 }

func (UFrac8Conv) FromF32(v float32) UFrac8 {
	if v <= 0 {
		return 0
	}

	r := math.Round(float64(v) * 128)
	if r >= 255 {
		return 255
	}

	return UFrac8(r)
}

// UFrac16 is an unsigned Q1.15 fixed point fraction: value = raw / 32768,
// representable range [0, 65535/32768] with a resolution of 1/32768.
type UFrac16 uint16

// UFrac16Conv converts UFrac16 samples, rounding to the nearest
// representable fraction.
type UFrac16Conv struct{}

func (UFrac16Conv) ToF32(v UFrac16) float32 { return float32(v) / 32768 }

func (UFrac16Conv) FromF32(v float32) UFrac16 {
	if v <= 0 {
		return 0
	}

	r := math.Round(float64(v) * 32768)
	if r >= 65535 {
		return 65535
	}

	return UFrac16(r)
}

// F16Conv converts IEEE 754 half precision samples.
type F16Conv struct{}

func (F16Conv) ToF32(v float16.Float16) float32 { return v.Float32() }

func (F16Conv) FromF32(v float32) float16.Float16 { return float16.Fromfloat32(v) }

// I8Conv converts signed byte samples, truncating toward zero and
// saturating at the int8 limits.
type I8Conv struct{}

func (I8Conv) ToF32(v int8) float32 { return float32(v) }

func (I8Conv) FromF32(v float32) int8 {
	if v <= math.MinInt8 {
		return math.MinInt8
	}

	if v >= math.MaxInt8 {
		return math.MaxInt8
	}

	return int8(v)
}
