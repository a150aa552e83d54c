package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unsafe"

	"github.com/delaneyj/toolbelt/bytebufferpool"

	"github.com/starfederation/nbt-go/internal/mutf8"
)

// Writer emits NBT in a fixed byte order. Like Reader, the first failure is
// sticky and later writes are no-ops.
type Writer struct {
	w        io.Writer
	order    binary.ByteOrder
	maxDepth int
	err      error
	buf      [8]byte
}

// NewWriter returns a Writer over w. Without options it writes big-endian
// data and refuses trees nested deeper than DefaultMaxDepth.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := buildOptions(opts)
	return &Writer{w: w, order: o.order, maxDepth: o.maxDepth}
}

// Err returns the first failure encountered, or nil.
func (w *Writer) Err() error {
	return w.err
}

// WriteType writes one tag type code.
func (w *Writer) WriteType(t TagType) error {
	if !t.Valid() {
		return w.fail("invalid tag type %d", uint8(t))
	}
	WriteNum(w, uint8(t))
	return w.err
}

// WriteNum writes one fixed-width number in the writer's byte order.
// Failures are recorded and reported by w.Err.
func WriteNum[T fixed](w *Writer, x T) {
	buf := w.buf[:unsafe.Sizeof(x)]
	switch v := any(x).(type) {
	case int8:
		buf[0] = byte(v)
	case uint8:
		buf[0] = v
	case int16:
		w.order.PutUint16(buf, uint16(v))
	case uint16:
		w.order.PutUint16(buf, v)
	case int32:
		w.order.PutUint32(buf, uint32(v))
	case uint32:
		w.order.PutUint32(buf, v)
	case int64:
		w.order.PutUint64(buf, uint64(v))
	case uint64:
		w.order.PutUint64(buf, v)
	case float32:
		w.order.PutUint32(buf, math.Float32bits(v))
	case float64:
		w.order.PutUint64(buf, math.Float64bits(v))
	}
	w.write(buf)
}

// WriteString writes a length-prefixed modified UTF-8 string. Strings whose
// encoded form exceeds 65535 bytes are rejected.
func (w *Writer) WriteString(s string) error {
	n := mutf8.EncodedLen(s)
	if n > math.MaxUint16 {
		return w.fail("string of %d encoded bytes exceeds %d", n, math.MaxUint16)
	}
	WriteNum(w, uint16(n))
	buf := getScratch(0)
	buf = mutf8.Append(buf, s)
	w.write(buf)
	putScratch(buf)
	return w.err
}

// WriteNamed writes t as a named tag: type code, name, payload.
func (w *Writer) WriteNamed(name string, t Tag) error {
	if t == nil {
		return w.fail("cannot write nil tag %q", name)
	}
	if err := w.WriteType(t.Type()); err != nil {
		return err
	}
	if err := w.WriteString(name); err != nil {
		return err
	}
	return w.writePayload(t, 0)
}

// WritePayload writes the unnamed payload of t.
func (w *Writer) WritePayload(t Tag) error {
	if t == nil {
		return w.fail("cannot write nil tag")
	}
	return w.writePayload(t, 0)
}

func (w *Writer) writePayload(t Tag, depth int) error {
	switch v := t.(type) {
	case Byte:
		WriteNum(w, int8(v))
	case Short:
		WriteNum(w, int16(v))
	case Int:
		WriteNum(w, int32(v))
	case Long:
		WriteNum(w, int64(v))
	case Float:
		WriteNum(w, float32(v))
	case Double:
		WriteNum(w, float64(v))
	case String:
		return w.WriteString(string(v))
	case ByteArray:
		writeArray(w, v)
	case IntArray:
		writeArray(w, v)
	case LongArray:
		writeArray(w, v)
	case *List:
		if err := w.enter(depth); err != nil {
			return err
		}
		return w.writeList(v, depth+1)
	case *Compound:
		if err := w.enter(depth); err != nil {
			return err
		}
		return w.writeCompound(v, depth+1)
	default:
		return w.fail("unsupported tag %T", t)
	}
	return w.err
}

func (w *Writer) enter(depth int) error {
	if w.maxDepth > 0 && depth >= w.maxDepth {
		return w.fail("nesting deeper than %d", w.maxDepth)
	}
	return nil
}

func (w *Writer) writeList(l *List, depth int) error {
	if len(l.elems) > math.MaxInt32 {
		return w.fail("list of %d elements is too long", len(l.elems))
	}
	if err := w.WriteType(l.elemType); err != nil {
		return err
	}
	WriteNum(w, int32(len(l.elems)))
	for _, elem := range l.elems {
		if err := w.writePayload(elem, depth); err != nil {
			return err
		}
	}
	return w.err
}

func (w *Writer) writeCompound(c *Compound, depth int) error {
	for _, key := range c.keys {
		v := c.entries[key]
		if v.IsEmpty() {
			return w.fail("compound entry %q is empty", key)
		}
		if err := w.WriteType(v.tag.Type()); err != nil {
			return err
		}
		if err := w.WriteString(key); err != nil {
			return err
		}
		if err := w.writePayload(v.tag, depth); err != nil {
			return err
		}
	}
	WriteNum(w, uint8(TagEnd))
	return w.err
}

func writeArray[T int8 | int32 | int64](w *Writer, a []T) {
	if len(a) > math.MaxInt32 {
		w.fail("array of %d elements is too long", len(a))
		return
	}
	WriteNum(w, int32(len(a)))
	for _, x := range a {
		WriteNum(w, x)
	}
}

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.w.Write(b); err != nil {
		w.err = fmt.Errorf("%w: %w", ErrEncode, err)
	}
}

func (w *Writer) fail(format string, args ...any) error {
	if w.err == nil {
		w.err = fmt.Errorf("%w: "+format, append([]any{ErrEncode}, args...)...)
	}
	return w.err
}

// Encode writes t as a named root tag to wr.
func Encode(wr io.Writer, name string, t Tag, opts ...Option) error {
	return NewWriter(wr, opts...).WriteNamed(name, t)
}

// Marshal encodes t as a named root tag.
func Marshal(name string, t Tag, opts ...Option) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := Encode(buf, name, t, opts...); err != nil {
		return nil, err
	}
	out := append([]byte{}, buf.Bytes()...)
	return out, nil
}
