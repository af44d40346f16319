package curve

import (
	"gopkg.in/yaml.v3"
)

// Serialized curves always carry their points in canonical float32
// space, so a curve stored from one sample-type instantiation can be
// loaded into another. FormatYAML is self-describing and human
// readable; FormatCompact is the quantized binary layout and only
// available for individual breakpoint curves.

type irregularD struct {
	Points []PointF32 `yaml:"points"`
}

type setEntryD struct {
	Key    float32    `yaml:"key"`
	Points []PointF32 `yaml:"points"`
}

type curveSetD struct {
	Curves []setEntryD `yaml:"curves"`
}

// Marshal serializes the curve in the given format.
func (c *Irregular[X, Y, XC, YC]) Marshal(format SerdeFormat) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(&irregularD{Points: c.Points()})
	case FormatCompact:
		return c.EncodeCompact(), nil
	}

	return nil, ErrBadFormat
}

// UnmarshalIrregularF32 is the inverse of Irregular.Marshal.
func UnmarshalIrregularF32(data []byte, format SerdeFormat) (*IrregularF32, error) {
	switch format {
	case FormatYAML:
		var d irregularD

		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, err
		}

		if len(d.Points) < 2 {
			return nil, ErrBadData
		}

		return NewIrregularF32(d.Points), nil
	case FormatCompact:
		return DecodeCompact(data)
	}

	return nil, ErrBadFormat
}

// UnmarshalIrregular reconstructs a curve in the requested storage
// types, converting the canonical points on the way in.
func UnmarshalIrregular[X, Y any, XC Conv[X], YC Conv[Y]](xc XC, yc YC, data []byte, format SerdeFormat) (*Irregular[X, Y, XC, YC], error) {
	cf, err := UnmarshalIrregularF32(data, format)
	if err != nil {
		return nil, err
	}

	points := make([]Point[X, Y], 0, cf.Len())
	for _, p := range cf.Points() {
		points = append(points, Point[X, Y]{X: xc.FromF32(p.X), Y: yc.FromF32(p.Y)})
	}

	return NewIrregular[X, Y, XC, YC](xc, yc, points), nil
}

// Marshal serializes the whole set as one document. Only FormatYAML is
// supported here: the compact layout covers a single curve, sets in
// compact form are written as one file per curve by the tree storage.
func (s *CurveSet[K, KC, C]) Marshal(format SerdeFormat) ([]byte, error) {
	if format != FormatYAML {
		return nil, ErrBadFormat
	}

	d := &curveSetD{
		Curves: make([]setEntryD, 0, len(s.entries)),
	}

	for _, e := range s.entries {
		d.Curves = append(d.Curves, setEntryD{
			Key:    s.kc.ToF32(e.Key),
			Points: e.Curve.Points(),
		})
	}

	return yaml.Marshal(d)
}

// UnmarshalCurveSetF32 is the inverse of CurveSet.Marshal.
func UnmarshalCurveSetF32(data []byte, format SerdeFormat) (*CurveSetF32, error) {
	if format != FormatYAML {
		return nil, ErrBadFormat
	}

	var d curveSetD

	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}

	s := NewCurveSetF32()

	for _, e := range d.Curves {
		if len(e.Points) < 2 {
			return nil, ErrBadData
		}

		s.AddCurve(e.Key, NewIrregularF32(e.Points))
	}

	return s, nil
}

// SaveCurve writes one curve to a storage under the given key, in the
// given format.
func SaveCurve(stg Storage, key string, c *IrregularF32, format SerdeFormat) error {
	data, err := c.Marshal(format)
	if err != nil {
		return err
	}

	return stg.Save(key, data)
}

// LoadCurve is the inverse of SaveCurve.
func LoadCurve(stg Storage, key string, format SerdeFormat) (*IrregularF32, error) {
	data, err := stg.Load(key)
	if err != nil {
		return nil, err
	}

	return UnmarshalIrregularF32(data, format)
}
