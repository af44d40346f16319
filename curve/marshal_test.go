package curve

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

type memStorage struct {
	m map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{
		m: make(map[string][]byte),
	}
}

func (stg *memStorage) Save(key string, data []byte) error {
	stg.m[key] = data

	return nil
}

func (stg *memStorage) Load(key string) ([]byte, error) {
	d, ok := stg.m[key]
	if !ok {
		return nil, commerr.ErrNotFound
	}

	return d, nil
}

func TestIrregularMarshalYAML(t *testing.T) {
	c := NewIrregularF32(utIrregularPoints())

	data, err := c.Marshal(FormatYAML)
	assert.Nil(t, err)

	d, err := UnmarshalIrregularF32(data, FormatYAML)
	assert.Nil(t, err)

	assert.EqualValues(t, c.Len(), d.Len())
	assert.InDelta(t, 0, Distance(c, d), 1e-5)
}

func TestIrregularMarshalCompact(t *testing.T) {
	c := NewIrregularF32(utIrregularPoints())

	data, err := c.Marshal(FormatCompact)
	assert.Nil(t, err)
	assert.EqualValues(t, c.EncodeCompact(), data)

	d, err := UnmarshalIrregularF32(data, FormatCompact)
	assert.Nil(t, err)
	assert.InDelta(t, c.YAtX(25), d.YAtX(25), 2.0/255)
}

func TestUnmarshalIrregularTyped(t *testing.T) {
	c := NewIrregularF32(utIrregularPoints())

	data, err := c.Marshal(FormatYAML)
	assert.Nil(t, err)

	d, err := UnmarshalIrregular[float32, UFrac16, F32Conv, UFrac16Conv](F32Conv{}, UFrac16Conv{}, data, FormatYAML)
	assert.Nil(t, err)
	assert.InDelta(t, c.YAtX(25), d.YAtX(25), 0.001)
}

func TestUnmarshalIrregularBadData(t *testing.T) {
	_, err := UnmarshalIrregularF32([]byte("points: []"), FormatYAML)
	assert.ErrorIs(t, err, ErrBadData)

	_, err = UnmarshalIrregularF32([]byte(":::"), FormatYAML)
	assert.NotNil(t, err)

	c := NewIrregularF32(utIrregularPoints())

	_, err = c.Marshal(SerdeFormat(99))
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestCurveSetMarshal(t *testing.T) {
	s := utCurveSet()

	data, err := s.Marshal(FormatYAML)
	assert.Nil(t, err)

	d, err := UnmarshalCurveSetF32(data, FormatYAML)
	assert.Nil(t, err)

	assert.EqualValues(t, s.Len(), d.Len())

	for i, e := range s.Entries() {
		assert.EqualValues(t, e.Key, d.Entries()[i].Key)
		assert.InDelta(t, 0, Distance(e.Curve, d.Entries()[i].Curve), 1e-5)
	}

	// sets have no compact form, the tree storage splits them into
	// one compact file per curve instead
	_, err = s.Marshal(FormatCompact)
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestSaveLoadCurve(t *testing.T) {
	stg := newMemStorage()

	c := NewIrregularF32(utIrregularPoints())

	assert.Nil(t, SaveCurve(stg, "route-1", c, FormatYAML))

	d, err := LoadCurve(stg, "route-1", FormatYAML)
	assert.Nil(t, err)
	assert.InDelta(t, 0, Distance(c, d), 1e-5)

	_, err = LoadCurve(stg, "route-2", FormatYAML)
	assert.ErrorIs(t, err, commerr.ErrNotFound)
}
