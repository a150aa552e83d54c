package nbt

import (
	"math"
	"slices"
)

// Tag is one node of an NBT tree. The set of implementations is closed:
// Byte, Short, Int, Long, Float, Double, ByteArray, String, *List,
// *Compound, IntArray and LongArray.
type Tag interface {
	// Type reports the wire code of the tag kind.
	Type() TagType
	isTag()
}

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string

	ByteArray []int8
	IntArray  []int32
	LongArray []int64
)

func (Byte) Type() TagType      { return TagByte }
func (Short) Type() TagType     { return TagShort }
func (Int) Type() TagType       { return TagInt }
func (Long) Type() TagType      { return TagLong }
func (Float) Type() TagType     { return TagFloat }
func (Double) Type() TagType    { return TagDouble }
func (String) Type() TagType    { return TagString }
func (ByteArray) Type() TagType { return TagByteArray }
func (IntArray) Type() TagType  { return TagIntArray }
func (LongArray) Type() TagType { return TagLongArray }

func (Byte) isTag()      {}
func (Short) isTag()     {}
func (Int) isTag()       {}
func (Long) isTag()      {}
func (Float) isTag()     {}
func (Double) isTag()    {}
func (String) isTag()    {}
func (ByteArray) isTag() {}
func (IntArray) isTag()  {}
func (LongArray) isTag() {}

// NewTag returns the zero value tag of kind t. It returns nil for TagEnd
// and for undefined codes.
func NewTag(t TagType) Tag {
	switch t {
	case TagByte:
		return Byte(0)
	case TagShort:
		return Short(0)
	case TagInt:
		return Int(0)
	case TagLong:
		return Long(0)
	case TagFloat:
		return Float(0)
	case TagDouble:
		return Double(0)
	case TagByteArray:
		return ByteArray{}
	case TagString:
		return String("")
	case TagList:
		return NewList(TagEnd)
	case TagCompound:
		return NewCompound()
	case TagIntArray:
		return IntArray{}
	case TagLongArray:
		return LongArray{}
	default:
		return nil
	}
}

// Equal reports whether a and b are the same kind with equal payloads.
// Floating point payloads compare by bit pattern, so NaN values read from
// the wire compare equal to themselves. Compounds compare as key sets,
// independent of insertion order. Two nil tags are not equal.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case Byte, Short, Int, Long, String:
		return a == b
	case Float:
		return math.Float32bits(float32(av)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return slices.Equal(av, b.(ByteArray))
	case IntArray:
		return slices.Equal(av, b.(IntArray))
	case LongArray:
		return slices.Equal(av, b.(LongArray))
	case *List:
		return av.Equal(b.(*List))
	case *Compound:
		return av.Equal(b.(*Compound))
	}
	return false
}

// Clone returns a deep copy of t. Containers and arrays never share
// storage with the original.
func Clone(t Tag) Tag {
	switch v := t.(type) {
	case ByteArray:
		return slices.Clone(v)
	case IntArray:
		return slices.Clone(v)
	case LongArray:
		return slices.Clone(v)
	case *List:
		return v.Clone()
	case *Compound:
		return v.Clone()
	default:
		return t
	}
}
