package nbt

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode matches every failure produced while reading NBT input.
	ErrDecode = errors.New("nbt: decode error")
	// ErrInvalidCast is returned when a Value is read, assigned or indexed
	// as a kind its tag cannot widen to.
	ErrInvalidCast = errors.New("nbt: invalid cast")
	// ErrTypeMismatch is returned when a List receives an element of a
	// different kind than its element type. It matches ErrInvalidCast.
	ErrTypeMismatch = fmt.Errorf("%w: list element type mismatch", ErrInvalidCast)
	// ErrNotFound is returned by checked lookups on missing keys or indices.
	ErrNotFound = errors.New("nbt: not found")
	// ErrDepthExceeded is returned when input nests deeper than the reader allows.
	ErrDepthExceeded = fmt.Errorf("%w: maximum nesting depth exceeded", ErrDecode)
	// ErrEncode matches every failure produced while writing NBT output.
	ErrEncode = errors.New("nbt: encode error")
)

// DecodeError describes malformed or truncated input.
type DecodeError struct {
	// Offset is the number of bytes consumed before the failure.
	Offset int64
	// Path is the dotted location of the failing tag, e.g. "Level.Sections[3]".
	Path string
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	var b []byte
	b = append(b, "nbt: decode"...)
	if e.Path != "" {
		b = append(b, " "...)
		b = append(b, e.Path...)
	}
	b = fmt.Appendf(b, " at offset %d: %s", e.Offset, e.Msg)
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrDecode for every DecodeError so callers can match the family
// without knowing the cause.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func castError(from TagType, to string) error {
	return fmt.Errorf("%w: %s to %s", ErrInvalidCast, from, to)
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}
