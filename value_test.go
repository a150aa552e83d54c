package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueWideningReads(t *testing.T) {
	b := NewValue(Byte(-7))

	i8, err := b.AsInt8()
	require.NoError(t, err)
	require.EqualValues(t, -7, i8)
	i32, err := b.AsInt32()
	require.NoError(t, err)
	require.EqualValues(t, -7, i32)
	i64, err := b.AsInt64()
	require.NoError(t, err)
	require.EqualValues(t, -7, i64)
	f64, err := b.AsFloat64()
	require.NoError(t, err)
	require.EqualValues(t, -7, f64)

	f := NewValue(Float(1.5))
	d, err := f.AsFloat64()
	require.NoError(t, err)
	require.Equal(t, 1.5, d)
	_, err = f.AsInt64()
	require.ErrorIs(t, err, ErrInvalidCast)
}

func TestValueRejectsNarrowing(t *testing.T) {
	d := NewValue(Double(2))
	_, err := d.AsFloat32()
	require.ErrorIs(t, err, ErrInvalidCast)

	l := NewValue(Long(2))
	_, err = l.AsInt32()
	require.ErrorIs(t, err, ErrInvalidCast)

	s := NewValue(Short(2))
	_, err = s.AsInt8()
	require.ErrorIs(t, err, ErrInvalidCast)
}

func TestValueStringNeverConvertsToNumber(t *testing.T) {
	v := NewValue(String("12"))
	_, err := v.AsInt8()
	require.ErrorIs(t, err, ErrInvalidCast)
	_, err = v.AsInt64()
	require.ErrorIs(t, err, ErrInvalidCast)
	_, err = v.AsFloat64()
	require.ErrorIs(t, err, ErrInvalidCast)

	s, err := v.AsString()
	require.NoError(t, err)
	require.Equal(t, "12", s)

	_, err = NewValue(Int(12)).AsString()
	require.ErrorIs(t, err, ErrInvalidCast)
}

func TestValueWideningTable(t *testing.T) {
	kinds := []Tag{Byte(1), Short(1), Int(1), Long(1), Float(1), Double(1)}
	reads := []struct {
		name  string
		limit TagType
		read  func(*Value) error
	}{
		{"int8", TagByte, func(v *Value) error { _, err := v.AsInt8(); return err }},
		{"int16", TagShort, func(v *Value) error { _, err := v.AsInt16(); return err }},
		{"int32", TagInt, func(v *Value) error { _, err := v.AsInt32(); return err }},
		{"int64", TagLong, func(v *Value) error { _, err := v.AsInt64(); return err }},
		{"float32", TagFloat, func(v *Value) error { _, err := v.AsFloat32(); return err }},
		{"float64", TagDouble, func(v *Value) error { _, err := v.AsFloat64(); return err }},
	}
	for _, rd := range reads {
		for _, k := range kinds {
			err := rd.read(NewValue(k))
			if k.Type() <= rd.limit {
				require.NoError(t, err, "%s from %s", rd.name, k.Type())
			} else {
				require.ErrorIs(t, err, ErrInvalidCast, "%s from %s", rd.name, k.Type())
			}
		}
	}
}

func TestValueAssignmentKeepsKind(t *testing.T) {
	v := NewValue(Long(0))
	require.NoError(t, v.SetInt8(5))
	require.Equal(t, Long(5), v.Tag())
	require.NoError(t, v.SetInt32(-9))
	require.Equal(t, Long(-9), v.Tag())

	d := NewValue(Double(0))
	require.NoError(t, d.SetFloat32(0.5))
	require.Equal(t, Double(0.5), d.Tag())
}

func TestValueAssignmentRejectsNarrowing(t *testing.T) {
	v := NewValue(Short(3))
	require.ErrorIs(t, v.SetInt32(70000), ErrInvalidCast)
	require.Equal(t, Short(3), v.Tag())

	f := NewValue(Float(1))
	require.ErrorIs(t, f.SetFloat64(1), ErrInvalidCast)
	require.Equal(t, Float(1), f.Tag())

	s := NewValue(String("x"))
	require.ErrorIs(t, s.SetInt8(1), ErrInvalidCast)
	require.Equal(t, String("x"), s.Tag())

	n := NewValue(Int(1))
	require.ErrorIs(t, n.SetString("x"), ErrInvalidCast)
	require.NoError(t, s.SetString("y"))
	require.Equal(t, String("y"), s.Tag())
}

func TestEmptyValue(t *testing.T) {
	var v Value
	require.True(t, v.IsEmpty())
	require.Equal(t, TagEnd, v.Type())
	require.ErrorIs(t, v.SetInt32(1), ErrInvalidCast)
	require.ErrorIs(t, v.SetString("a"), ErrInvalidCast)
	_, err := v.AsInt64()
	require.ErrorIs(t, err, ErrInvalidCast)
	require.True(t, v.IsEmpty())

	v.SetTag(Int(3))
	require.Equal(t, TagInt, v.Type())
	require.Equal(t, "3", v.String())
}

func TestValueCompoundAccess(t *testing.T) {
	root := NewCompound()
	root.Put("name", String("Steve"))
	v := NewValue(root)

	name, err := v.At("name")
	require.NoError(t, err)
	s, err := name.AsString()
	require.NoError(t, err)
	require.Equal(t, "Steve", s)

	_, err = v.At("missing")
	require.ErrorIs(t, err, ErrNotFound)

	created, err := v.Index("missing")
	require.NoError(t, err)
	require.True(t, created.IsEmpty())
	require.True(t, root.Has("missing"))

	scalar := NewValue(Int(1))
	_, err = scalar.At("x")
	require.ErrorIs(t, err, ErrInvalidCast)
	_, err = scalar.Index("x")
	require.ErrorIs(t, err, ErrInvalidCast)
	_, err = scalar.List()
	require.ErrorIs(t, err, ErrInvalidCast)
}

func TestValueEquality(t *testing.T) {
	require.True(t, NewValue(Int(1)).Equal(NewValue(Int(1))))
	require.False(t, NewValue(Int(1)).Equal(NewValue(Long(1))))
	require.False(t, NewValue(nil).Equal(NewValue(nil)))
	require.False(t, NewValue(Int(1)).Equal(&Value{}))

	a := NewCompound()
	a.Put("k", IntArray{1, 2, 3})
	b := a.Clone()
	require.True(t, NewValue(a).Equal(NewValue(b)))
}
