package nbt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unsafe"

	"github.com/starfederation/nbt-go/internal/mutf8"
)

// fixed is the set of numbers with a defined width on the wire.
type fixed interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Reader pulls NBT primitives from a byte source. It is not safe for
// concurrent use; independent Readers share no state.
//
// The first failure is sticky: once a read fails every later read is a no-op
// and Err reports the original failure.
type Reader struct {
	r        io.Reader
	order    binary.ByteOrder
	maxDepth int
	off      int64
	err      error
	buf      [8]byte
}

// NewReader returns a Reader over r. Without options it reads big-endian
// data and enforces DefaultMaxDepth.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := buildOptions(opts)
	return &Reader{r: r, order: o.order, maxDepth: o.maxDepth}
}

// ByteOrder returns the byte order the reader decodes with.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// Err returns the first failure encountered, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

// ReadType reads one tag type code. TagEnd is rejected unless allowEnd is set.
func (r *Reader) ReadType(allowEnd bool) (TagType, error) {
	start := r.off
	b := ReadNum[uint8](r)
	if r.err != nil {
		return TagEnd, r.err
	}
	t := TagType(b)
	if !t.Valid() {
		return TagEnd, r.failAt(start, nil, "invalid tag type %d", b)
	}
	if t == TagEnd && !allowEnd {
		return TagEnd, r.failAt(start, nil, "unexpected End tag")
	}
	return t, nil
}

// ReadNum reads one fixed-width number in the reader's byte order.
//
// It does not report failure itself: on a short read it returns zero and
// records the failure, which the caller observes through r.Err.
func ReadNum[T fixed](r *Reader) T {
	var x T
	buf := r.buf[:unsafe.Sizeof(x)]
	if !r.readFull(buf) {
		return x
	}
	switch p := any(&x).(type) {
	case *int8:
		*p = int8(buf[0])
	case *uint8:
		*p = buf[0]
	case *int16:
		*p = int16(r.order.Uint16(buf))
	case *uint16:
		*p = r.order.Uint16(buf)
	case *int32:
		*p = int32(r.order.Uint32(buf))
	case *uint32:
		*p = r.order.Uint32(buf)
	case *int64:
		*p = int64(r.order.Uint64(buf))
	case *uint64:
		*p = r.order.Uint64(buf)
	case *float32:
		*p = math.Float32frombits(r.order.Uint32(buf))
	case *float64:
		*p = math.Float64frombits(r.order.Uint64(buf))
	}
	return x
}

// ReadString reads a length-prefixed modified UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	n := ReadNum[uint16](r)
	if r.err != nil {
		return "", r.err
	}
	start := r.off
	buf := getScratch(int(n))
	defer putScratch(buf)
	if !r.readFull(buf) {
		return "", r.err
	}
	s, err := mutf8.Decode(buf)
	if err != nil {
		return "", r.failAt(start, err, "malformed string")
	}
	return s, nil
}

func (r *Reader) readFull(buf []byte) bool {
	if r.err != nil {
		return false
	}
	n, err := io.ReadFull(r.r, buf)
	start := r.off
	r.off += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		r.failAt(start, err, "reading %d bytes", len(buf))
		return false
	}
	return true
}

// failAt records a DecodeError at offset and returns it. The first recorded
// failure wins.
func (r *Reader) failAt(offset int64, cause error, format string, args ...any) error {
	if r.err == nil {
		r.err = &DecodeError{Offset: offset, Msg: fmt.Sprintf(format, args...), Err: cause}
	}
	return r.err
}
