package nbt

import (
	"fmt"
	"strings"
)

// TagType is the single-byte wire code identifying a tag kind.
type TagType uint8

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// tagTypeCount is one past the highest valid wire code.
const tagTypeCount = TagLongArray + 1

var tagTypeNames = [tagTypeCount]string{
	"End",
	"Byte",
	"Short",
	"Int",
	"Long",
	"Float",
	"Double",
	"ByteArray",
	"String",
	"List",
	"Compound",
	"IntArray",
	"LongArray",
}

// Valid reports whether t is one of the defined wire codes.
func (t TagType) Valid() bool {
	return t < tagTypeCount
}

// IsNumeric reports whether t holds a single integer or floating point value.
func (t TagType) IsNumeric() bool {
	return t >= TagByte && t <= TagDouble
}

func (t TagType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TagType(%d)", uint8(t))
	}
	return tagTypeNames[t]
}

// ParseTagType maps a case-insensitive tag kind name back to its wire code.
func ParseTagType(name string) (TagType, error) {
	for i, n := range tagTypeNames {
		if strings.EqualFold(n, name) {
			return TagType(i), nil
		}
	}
	return TagEnd, fmt.Errorf("unknown tag type %q", name)
}
