package nbt

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

// Numeric kinds are ordered Byte < Short < Int < Long < Float < Double and a
// value of one kind widens to every kind at or after it.

// AsInt8 returns the value of a Byte tag.
func (v *Value) AsInt8() (int8, error) {
	return asNumber[int8](v, TagByte)
}

// AsInt16 returns the value of a Byte or Short tag.
func (v *Value) AsInt16() (int16, error) {
	return asNumber[int16](v, TagShort)
}

// AsInt32 returns the value of a Byte, Short or Int tag.
func (v *Value) AsInt32() (int32, error) {
	return asNumber[int32](v, TagInt)
}

// AsInt64 returns the value of any integer tag.
func (v *Value) AsInt64() (int64, error) {
	return asNumber[int64](v, TagLong)
}

// AsFloat32 returns the value of any integer tag or a Float tag.
func (v *Value) AsFloat32() (float32, error) {
	return asNumber[float32](v, TagFloat)
}

// AsFloat64 returns the value of any numeric tag.
func (v *Value) AsFloat64() (float64, error) {
	return asNumber[float64](v, TagDouble)
}

// AsString returns the text of a String tag. Numbers never convert.
func (v *Value) AsString() (string, error) {
	s, ok := v.Tag().(String)
	if !ok {
		return "", castError(v.Type(), "String")
	}
	return string(s), nil
}

// SetInt8 stores x into the held numeric tag, keeping the tag's kind.
func (v *Value) SetInt8(x int8) error {
	return setNumber(v, x, TagByte)
}

// SetInt16 stores x into a Short or wider numeric tag.
func (v *Value) SetInt16(x int16) error {
	return setNumber(v, x, TagShort)
}

// SetInt32 stores x into an Int or wider numeric tag.
func (v *Value) SetInt32(x int32) error {
	return setNumber(v, x, TagInt)
}

// SetInt64 stores x into a Long, Float or Double tag.
func (v *Value) SetInt64(x int64) error {
	return setNumber(v, x, TagLong)
}

// SetFloat32 stores x into a Float or Double tag.
func (v *Value) SetFloat32(x float32) error {
	return setNumber(v, x, TagFloat)
}

// SetFloat64 stores x into a Double tag.
func (v *Value) SetFloat64(x float64) error {
	return setNumber(v, x, TagDouble)
}

// SetString replaces the text of a String tag.
func (v *Value) SetString(s string) error {
	if v.Type() != TagString {
		return castError(TagString, v.Type().String())
	}
	v.tag = String(s)
	return nil
}

func asNumber[T number](v *Value, want TagType) (T, error) {
	from := v.Type()
	if !from.IsNumeric() || from > want {
		return 0, castError(from, want.String())
	}
	return numberOf[T](v.tag), nil
}

func setNumber[T number](v *Value, x T, from TagType) error {
	if v.IsEmpty() {
		return fmt.Errorf("%w: cannot assign %s to empty value", ErrInvalidCast, from)
	}
	to := v.tag.Type()
	if !to.IsNumeric() || to < from {
		return castError(from, to.String())
	}
	v.tag = numericTag(to, x)
	return nil
}

func numberOf[T number](t Tag) T {
	switch n := t.(type) {
	case Byte:
		return T(n)
	case Short:
		return T(n)
	case Int:
		return T(n)
	case Long:
		return T(n)
	case Float:
		return T(n)
	case Double:
		return T(n)
	}
	return 0
}

// numericTag builds a tag of kind t holding x. Callers guarantee t is numeric.
func numericTag[T number](t TagType, x T) Tag {
	switch t {
	case TagByte:
		return Byte(x)
	case TagShort:
		return Short(x)
	case TagInt:
		return Int(x)
	case TagLong:
		return Long(x)
	case TagFloat:
		return Float(x)
	default:
		return Double(x)
	}
}
