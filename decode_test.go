package nbt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// helloWorld is the smallest sample file shipped with the format description.
var helloWorld = []byte{
	0x0A, 0x00, 0x0B, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
	0x08, 0x00, 0x04, 'n', 'a', 'm', 'e',
	0x00, 0x09, 'B', 'a', 'n', 'a', 'n', 'r', 'a', 'm', 'a',
	0x00,
}

func TestDecodeHelloWorld(t *testing.T) {
	name, root, err := UnmarshalCompound(helloWorld)
	require.NoError(t, err)
	require.Equal(t, "hello world", name)
	require.Equal(t, 1, root.Len())

	v, err := root.At("name")
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	require.Equal(t, "Bananrama", s)
}

func TestDecodeEmptyCompoundConsumesOnlyEnd(t *testing.T) {
	in := []byte{0x00, 0xFF, 0xFF}
	r := NewReader(bytes.NewReader(in))
	tag, err := r.ReadPayload(TagCompound)
	require.NoError(t, err)
	require.Equal(t, 0, tag.(*Compound).Len())
	require.EqualValues(t, 1, r.Offset())
}

func TestDecodeUndefinedTypeCode(t *testing.T) {
	_, _, err := Unmarshal([]byte{0x0C, 0x00, 0x00})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDecode)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.EqualValues(t, 0, de.Offset)
}

func TestDecodeEndAtTopLevel(t *testing.T) {
	_, _, err := Unmarshal([]byte{0x00})
	require.ErrorIs(t, err, ErrDecode)
}

func TestDecodeNegativeListCountIsEmpty(t *testing.T) {
	in := []byte{0x03, 0xFF, 0xFF, 0xFF, 0xFE}
	r := NewReader(bytes.NewReader(in))
	tag, err := r.ReadPayload(TagList)
	require.NoError(t, err)
	l := tag.(*List)
	require.Equal(t, 0, l.Len())
	require.Equal(t, TagInt, l.ElemType())
}

func TestDecodeNegativeArrayLengthFails(t *testing.T) {
	for _, typ := range []TagType{TagByteArray, TagIntArray, TagLongArray} {
		r := NewReader(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
		_, err := r.ReadPayload(typ)
		require.ErrorIs(t, err, ErrDecode, typ.String())
		require.Contains(t, err.Error(), "negative array length")
	}
}

func TestDecodeListOfEndWithElementsFails(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00, 0x02}))
	_, err := r.ReadPayload(TagList)
	require.ErrorIs(t, err, ErrDecode)
}

func TestDecodeTruncatedInputs(t *testing.T) {
	full, err := Marshal("root", sampleTree(t))
	require.NoError(t, err)
	for n := 0; n < len(full); n++ {
		_, _, err := Unmarshal(full[:n])
		require.ErrorIs(t, err, ErrDecode, "prefix of %d bytes", n)
	}
	_, _, err = Unmarshal(full)
	require.NoError(t, err)
}

func TestDecodeTruncatedArrayDoesNotPreallocate(t *testing.T) {
	in := []byte{0x7F, 0xFF, 0xFF, 0xFF, 0x01}
	r := NewReader(bytes.NewReader(in))
	_, err := r.ReadPayload(TagLongArray)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeDuplicateKeysLastWins(t *testing.T) {
	in := []byte{
		0x01, 0x00, 0x01, 'a', 0x01,
		0x01, 0x00, 0x01, 'b', 0x02,
		0x01, 0x00, 0x01, 'a', 0x03,
		0x00,
	}
	tag, err := NewReader(bytes.NewReader(in)).ReadPayload(TagCompound)
	require.NoError(t, err)
	c := tag.(*Compound)
	require.Equal(t, []string{"a", "b"}, c.Keys())
	got, _ := c.Get("a")
	require.Equal(t, Byte(3), got)
}

func TestDecodeErrorPath(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x04, 'r', 'o', 'o', 't',
		0x09, 0x00, 0x05, 'i', 't', 'e', 'm', 's',
		0x0A, 0x00, 0x00, 0x00, 0x02,
		0x00,
		0x0B, 0x00, 0x03, 'i', 'd', 's', 0xFF, 0xFF, 0xFF, 0xFF,
	}
	_, _, err := Unmarshal(in)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "root.items[1].ids", de.Path)
	require.Contains(t, err.Error(), "root.items[1].ids")
}

func TestDecodeDepthLimit(t *testing.T) {
	nested := func(depth int) []byte {
		var b bytes.Buffer
		b.Write([]byte{0x09, 0x00, 0x00})
		for i := 1; i < depth; i++ {
			b.Write([]byte{0x09, 0x00, 0x00, 0x00, 0x01})
		}
		b.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x00})
		return b.Bytes()
	}

	_, tag, err := Unmarshal(nested(DefaultMaxDepth))
	require.NoError(t, err)
	require.Equal(t, TagList, tag.Type())

	_, _, err = Unmarshal(nested(DefaultMaxDepth + 1))
	require.ErrorIs(t, err, ErrDepthExceeded)
	require.ErrorIs(t, err, ErrDecode)

	_, _, err = Unmarshal(nested(DefaultMaxDepth+1), WithMaxDepth(0))
	require.NoError(t, err)

	_, _, err = Unmarshal(nested(3), WithMaxDepth(2))
	require.ErrorIs(t, err, ErrDepthExceeded)
}

func TestDecodeLittleEndian(t *testing.T) {
	in := []byte{
		0x0A, 0x00, 0x00,
		0x03, 0x01, 0x00, 'x', 0x01, 0x00, 0x00, 0x00,
		0x08, 0x01, 0x00, 's', 0x02, 0x00, 'h', 'i',
		0x00,
	}
	_, root, err := UnmarshalCompound(in, WithByteOrder(binary.LittleEndian))
	require.NoError(t, err)
	x, _ := root.Get("x")
	require.Equal(t, Int(1), x)
	s, _ := root.Get("s")
	require.Equal(t, String("hi"), s)

	_, _, err = UnmarshalCompound(in)
	require.ErrorIs(t, err, ErrDecode)
}

func TestUnmarshalCompoundRejectsScalarRoot(t *testing.T) {
	_, _, err := UnmarshalCompound([]byte{0x01, 0x00, 0x00, 0x05})
	require.ErrorIs(t, err, ErrInvalidCast)
}

func TestDecodeFromSlowReader(t *testing.T) {
	full, err := Marshal("root", sampleTree(t))
	require.NoError(t, err)
	_, tag, err := Decode(&oneByteReader{r: bytes.NewReader(full)})
	require.NoError(t, err)
	require.True(t, Equal(sampleTree(t), tag))
}

type oneByteReader struct {
	r io.Reader
}

func (o *oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

// sampleTree exercises every tag kind, including nested lists of compounds.
func sampleTree(t testing.TB) *Compound {
	t.Helper()
	root := NewCompound()
	root.Put("byte", Byte(-128))
	root.Put("short", Short(32767))
	root.Put("int", Int(-2147483648))
	root.Put("long", Long(9223372036854775807))
	root.Put("float", Float(0.49823147))
	root.Put("double", Double(0.4931287132182315))
	root.Put("string", String("HELLO WORLD THIS IS A TEST STRING ÅÄÖ!\x00😀"))
	root.Put("bytes", ByteArray{0, 62, 34, 16, 8, -1})
	root.Put("ints", IntArray{1, -2, 3})
	root.Put("longs", LongArray{1 << 40, -1})
	root.Put("empty", NewList(TagEnd))
	root.Put("typed empty", NewList(TagString))

	longs, err := ListOf(Long(11), Long(12), Long(13))
	require.NoError(t, err)
	root.Put("listTest (long)", longs)

	compounds := NewList(TagCompound)
	for i, n := range []string{"Compound tag #0", "Compound tag #1"} {
		c := NewCompound()
		c.Put("created-on", Long(1264099775885+int64(i)))
		c.Put("name", String(n))
		require.NoError(t, compounds.Append(c))
	}
	root.Put("listTest (compound)", compounds)

	nested := NewCompound()
	for _, k := range []string{"egg", "ham"} {
		c := NewCompound()
		c.Put("name", String(strings.ToUpper(k[:1])+k[1:]))
		c.Put("value", Float(0.5))
		nested.Put(k, c)
	}
	root.Put("nested compound test", nested)

	lists := NewList(TagList)
	inner, err := ListOf(IntArray{1}, IntArray{2, 3})
	require.NoError(t, err)
	require.NoError(t, lists.Append(inner))
	require.NoError(t, lists.Append(NewList(TagIntArray)))
	root.Put("list of lists", lists)
	return root
}
