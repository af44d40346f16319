package curve

import (
	"encoding/binary"
	"math"
)

// Compact binary layout (little-endian):
//
//	byte 0      format tag, always 1
//	bytes 1-4   min x as float32
//	bytes 5-8   max x as float32
//	byte 9      point count n (0-255)
//	bytes 10+2i quantized x of point i: trunc((x-minX)/(maxX-minX)*255)
//	bytes 11+2i quantized y of point i: trunc(y*255)
//
// Quantization truncates toward zero, so a point in the exact middle of
// the x range maps to byte 127.
const (
	compactTag       = 1
	compactHeaderLen = 10
	compactMaxPoints = 255
)

// EncodeCompact serializes the curve into the compact quantized layout
// at full resolution. Curves with more than 255 points are not
// representable and panic; use EncodeCompactLimited instead.
func (c *Irregular[X, Y, XC, YC]) EncodeCompact() []byte {
	if len(c.points) > compactMaxPoints {
		panic("compact format supports at most 255 points")
	}

	minX := c.MinX()
	maxX := c.MaxX()

	buf := make([]byte, 0, compactHeaderLen+2*len(c.points))
	buf = append(buf, compactTag)

	var b4 [4]byte

	binary.LittleEndian.PutUint32(b4[:], math.Float32bits(minX))
	buf = append(buf, b4[:]...)

	binary.LittleEndian.PutUint32(b4[:], math.Float32bits(maxX))
	buf = append(buf, b4[:]...)

	buf = append(buf, byte(len(c.points)))

	for i := range c.points {
		p := c.pointF32(i)

		xb := byte((p.X - minX) / (maxX - minX) * 255)
		yb := byte(p.Y * 255)

		buf = append(buf, xb, yb)
	}

	return buf
}

// EncodeCompactLimited encodes into at most maxBytes bytes, reducing a
// copy of the curve with SimplifyFixed first when the natural point
// count would overflow the budget.
func (c *Irregular[X, Y, XC, YC]) EncodeCompactLimited(maxBytes int) []byte {
	maxPoints := (maxBytes - compactHeaderLen) / 2
	if maxPoints > compactMaxPoints {
		maxPoints = compactMaxPoints
	}

	if len(c.points) <= maxPoints {
		return c.EncodeCompact()
	}

	clone := c.Clone()
	clone.SimplifyFixed(maxPoints)

	return clone.EncodeCompact()
}

// DecodeCompact reconstructs a breakpoint curve from the compact
// layout. Consecutive points quantized to the same x byte are collapsed
// to the first occurrence, so the result may hold fewer points than
// were encoded. Returns ErrBadFormat on an unknown tag and ErrBadData
// when the buffer is too short for the declared point count.
func DecodeCompact(buf []byte) (*IrregularF32, error) {
	if len(buf) < compactHeaderLen {
		return nil, ErrBadData
	}

	if buf[0] != compactTag {
		return nil, ErrBadFormat
	}

	minX := math.Float32frombits(binary.LittleEndian.Uint32(buf[1:5]))
	maxX := math.Float32frombits(binary.LittleEndian.Uint32(buf[5:9]))

	n := int(buf[9])
	if len(buf) < compactHeaderLen+2*n {
		return nil, ErrBadData
	}

	points := make([]PointF32, 0, n)
	prevXB := -1

	for i := 0; i < n; i++ {
		xb := buf[compactHeaderLen+2*i]
		yb := buf[compactHeaderLen+2*i+1]

		if int(xb) == prevXB {
			continue
		}

		points = append(points, PointF32{
			X: minX + float32(xb)/255*(maxX-minX),
			Y: float32(yb) / 255,
		})

		prevXB = int(xb)
	}

	if len(points) < 2 {
		return nil, ErrBadData
	}

	return NewIrregularF32(points), nil
}
