package nbt

import (
	"bytes"
	"errors"
	"io"
	"strconv"
)

// maxPrealloc caps how many array or list slots are reserved up front, so a
// forged length cannot force a huge allocation before the data runs out.
const maxPrealloc = 1 << 12

// ReadNamed reads one named tag: a type code (End is rejected), a name and
// the payload.
func (r *Reader) ReadNamed() (string, Tag, error) {
	t, err := r.ReadType(false)
	if err != nil {
		return "", nil, err
	}
	name, err := r.ReadString()
	if err != nil {
		return "", nil, err
	}
	tag, err := r.readPayload(t, 0)
	if err != nil {
		prefixPath(err, name)
		return "", nil, err
	}
	return name, tag, nil
}

// ReadPayload reads the unnamed payload of a tag of kind t.
func (r *Reader) ReadPayload(t TagType) (Tag, error) {
	return r.readPayload(t, 0)
}

func (r *Reader) readPayload(t TagType, depth int) (Tag, error) {
	start := r.off
	var tag Tag
	switch t {
	case TagByte:
		tag = Byte(ReadNum[int8](r))
	case TagShort:
		tag = Short(ReadNum[int16](r))
	case TagInt:
		tag = Int(ReadNum[int32](r))
	case TagLong:
		tag = Long(ReadNum[int64](r))
	case TagFloat:
		tag = Float(ReadNum[float32](r))
	case TagDouble:
		tag = Double(ReadNum[float64](r))
	case TagByteArray:
		tag = ByteArray(readArray[int8](r))
	case TagIntArray:
		tag = IntArray(readArray[int32](r))
	case TagLongArray:
		tag = LongArray(readArray[int64](r))
	case TagString:
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		tag = String(s)
	case TagList:
		if err := r.enter(start, depth); err != nil {
			return nil, err
		}
		return r.readList(depth + 1)
	case TagCompound:
		if err := r.enter(start, depth); err != nil {
			return nil, err
		}
		return r.readCompound(depth + 1)
	default:
		return nil, r.failAt(start, nil, "no payload for tag type %s", t)
	}
	if r.err != nil {
		return nil, r.err
	}
	return tag, nil
}

func (r *Reader) enter(start int64, depth int) error {
	if r.maxDepth > 0 && depth >= r.maxDepth {
		return r.failAt(start, ErrDepthExceeded, "nesting deeper than %d", r.maxDepth)
	}
	return nil
}

func (r *Reader) readList(depth int) (Tag, error) {
	elemType, err := r.ReadType(true)
	if err != nil {
		return nil, err
	}
	start := r.off
	n := ReadNum[int32](r)
	if r.err != nil {
		return nil, r.err
	}
	// Negative counts mean an empty list.
	if n < 0 {
		n = 0
	}
	if elemType == TagEnd && n > 0 {
		return nil, r.failAt(start, nil, "list of End with %d elements", n)
	}
	l := &List{elemType: elemType, elems: make([]Tag, 0, min(int(n), maxPrealloc))}
	for i := 0; i < int(n); i++ {
		elem, err := r.readPayload(elemType, depth)
		if err != nil {
			prefixPath(err, "["+strconv.Itoa(i)+"]")
			return nil, err
		}
		l.appendUnchecked(elem)
	}
	return l, nil
}

func (r *Reader) readCompound(depth int) (Tag, error) {
	c := NewCompound()
	for {
		t, err := r.ReadType(true)
		if err != nil {
			return nil, err
		}
		if t == TagEnd {
			return c, nil
		}
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		tag, err := r.readPayload(t, depth)
		if err != nil {
			prefixPath(err, name)
			return nil, err
		}
		c.Put(name, tag)
	}
}

func readArray[T int8 | int32 | int64](r *Reader) []T {
	start := r.off
	n := ReadNum[int32](r)
	if r.err != nil {
		return nil
	}
	if n < 0 {
		r.failAt(start, nil, "negative array length %d", n)
		return nil
	}
	out := make([]T, 0, min(int(n), maxPrealloc))
	for i := int32(0); i < n; i++ {
		x := ReadNum[T](r)
		if r.err != nil {
			return nil
		}
		out = append(out, x)
	}
	return out
}

// prefixPath records that err happened inside the tag at seg.
func prefixPath(err error, seg string) {
	var de *DecodeError
	if seg == "" || !errors.As(err, &de) {
		return
	}
	switch {
	case de.Path == "":
		de.Path = seg
	case de.Path[0] == '[':
		de.Path = seg + de.Path
	default:
		de.Path = seg + "." + de.Path
	}
}

// Decode reads one named root tag from rd.
func Decode(rd io.Reader, opts ...Option) (string, Tag, error) {
	return NewReader(rd, opts...).ReadNamed()
}

// Unmarshal decodes one named root tag from b. Trailing bytes are ignored.
func Unmarshal(b []byte, opts ...Option) (string, Tag, error) {
	return Decode(bytes.NewReader(b), opts...)
}

// UnmarshalCompound decodes b and requires the root tag to be a compound,
// which is the case for every file the game writes.
func UnmarshalCompound(b []byte, opts ...Option) (string, *Compound, error) {
	name, tag, err := Unmarshal(b, opts...)
	if err != nil {
		return "", nil, err
	}
	c, ok := tag.(*Compound)
	if !ok {
		return "", nil, castError(tag.Type(), "Compound")
	}
	return name, c, nil
}
