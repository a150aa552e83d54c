package nbt

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// UUIDTag encodes u the way the game stores entity UUIDs: an IntArray of
// four big-endian words, most significant first.
func UUIDTag(u uuid.UUID) IntArray {
	out := make(IntArray, 4)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(u[i*4:]))
	}
	return out
}

// UUIDFromTag reads a UUID stored as a four element IntArray or as a
// String in canonical textual form.
func UUIDFromTag(t Tag) (uuid.UUID, error) {
	switch v := t.(type) {
	case IntArray:
		if len(v) != 4 {
			return uuid.Nil, fmt.Errorf("%w: uuid int array has %d elements, want 4", ErrInvalidCast, len(v))
		}
		var u uuid.UUID
		for i, w := range v {
			binary.BigEndian.PutUint32(u[i*4:], uint32(w))
		}
		return u, nil
	case String:
		u, err := uuid.Parse(string(v))
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidCast, err)
		}
		return u, nil
	default:
		if t == nil {
			return uuid.Nil, castError(TagEnd, "UUID")
		}
		return uuid.Nil, castError(t.Type(), "UUID")
	}
}

// UUIDFromLegacy reads the pre-1.16 layout: a pair of Long entries named
// <prefix>Most and <prefix>Least inside c.
func UUIDFromLegacy(c *Compound, prefix string) (uuid.UUID, error) {
	most, err := legacyHalf(c, prefix+"Most")
	if err != nil {
		return uuid.Nil, err
	}
	least, err := legacyHalf(c, prefix+"Least")
	if err != nil {
		return uuid.Nil, err
	}
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], uint64(most))
	binary.BigEndian.PutUint64(u[8:], uint64(least))
	return u, nil
}

func legacyHalf(c *Compound, key string) (int64, error) {
	v, err := c.At(key)
	if err != nil {
		return 0, err
	}
	return v.AsInt64()
}
