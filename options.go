package nbt

import "encoding/binary"

// DefaultMaxDepth matches the nesting limit enforced by the game itself.
const DefaultMaxDepth = 512

type options struct {
	order    binary.ByteOrder
	maxDepth int
}

// Option configures a Reader or Writer.
type Option func(*options)

// WithByteOrder selects the byte order of multi-byte fields. Java Edition
// uses binary.BigEndian, the default; Bedrock Edition uses binary.LittleEndian.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		if order != nil {
			o.order = order
		}
	}
}

// WithMaxDepth limits how deeply lists and compounds may nest. A value of
// zero or less removes the limit, leaving deep input free to exhaust the stack.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

func buildOptions(opts []Option) options {
	o := options{order: binary.BigEndian, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
