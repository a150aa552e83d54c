package nbt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/minio/simdjson-go"
)

// FromJSON converts a JSON document into a tag tree. Objects become
// compounds in document order, booleans become Bytes, integers become Int
// or Long depending on range, other numbers become Doubles. Arrays become
// lists; arrays mixing numeric kinds are widened to the widest kind.
// JSON null has no NBT form and is rejected.
//
// Parsing uses simdjson when the CPU supports it and encoding/json otherwise.
func FromJSON(data []byte) (Tag, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("json input is empty")
	}
	if !simdjson.SupportedCPU() || (trimmed[0] != '{' && trimmed[0] != '[') {
		return tagFromJSONStream(trimmed)
	}
	parsed, err := simdjson.Parse(trimmed, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	return tagFromJSONIter(typ, root)
}

func tagFromJSONIter(typ simdjson.Type, it *simdjson.Iter) (Tag, error) {
	switch typ {
	case simdjson.TypeNull:
		return nil, fmt.Errorf("json null has no NBT form")
	case simdjson.TypeBool:
		v, err := it.Bool()
		if err != nil {
			return nil, err
		}
		return boolTag(v), nil
	case simdjson.TypeInt:
		v, err := it.Int()
		if err != nil {
			return nil, err
		}
		return intTag(v), nil
	case simdjson.TypeUint:
		v, err := it.Uint()
		if err != nil {
			return nil, err
		}
		if v > math.MaxInt64 {
			return Double(float64(v)), nil
		}
		return intTag(int64(v)), nil
	case simdjson.TypeFloat:
		v, err := it.Float()
		if err != nil {
			return nil, err
		}
		return Double(v), nil
	case simdjson.TypeString:
		s, err := it.String()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}
		c := NewCompound()
		var parseErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if parseErr != nil {
				return
			}
			tag, err := tagFromJSONIter(elem.Type(), &elem)
			if err != nil {
				parseErr = fmt.Errorf("%s: %w", key, err)
				return
			}
			c.Put(string(key), tag)
		}, nil)
		if err != nil {
			return nil, err
		}
		if parseErr != nil {
			return nil, parseErr
		}
		return c, nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}
		var elems []Tag
		iter := arr.Iter()
		for {
			t := iter.Advance()
			if t == simdjson.TypeNone {
				break
			}
			elem := iter
			tag, err := tagFromJSONIter(t, &elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", len(elems), err)
			}
			elems = append(elems, tag)
		}
		return listFromTags(elems)
	default:
		return nil, fmt.Errorf("unsupported json type: %v", typ)
	}
}

func tagFromJSONStream(data []byte) (Tag, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tag, err := tagFromJSONDecoder(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid character after top-level value")
	}
	return tag, nil
}

func tagFromJSONDecoder(dec *json.Decoder) (Tag, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case nil:
		return nil, fmt.Errorf("json null has no NBT form")
	case bool:
		return boolTag(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return intTag(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid json number: %s", v)
		}
		return Double(f), nil
	case string:
		return String(v), nil
	case json.Delim:
		switch v {
		case '{':
			c := NewCompound()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				tag, err := tagFromJSONDecoder(dec)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", key, err)
				}
				c.Put(key, tag)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return c, nil
		case '[':
			var elems []Tag
			for dec.More() {
				tag, err := tagFromJSONDecoder(dec)
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", len(elems), err)
				}
				elems = append(elems, tag)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return listFromTags(elems)
		}
	}
	return nil, fmt.Errorf("unexpected json token %v", tok)
}

func boolTag(b bool) Tag {
	if b {
		return Byte(1)
	}
	return Byte(0)
}

func intTag(v int64) Tag {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Int(v)
	}
	return Long(v)
}

// listFromTags builds a list, widening mixed numeric elements to the
// widest kind present.
func listFromTags(elems []Tag) (*List, error) {
	widest := TagEnd
	for _, t := range elems {
		if !t.Type().IsNumeric() {
			widest = TagEnd
			break
		}
		widest = max(widest, t.Type())
	}
	if widest != TagEnd {
		for i, t := range elems {
			switch {
			case t.Type() == widest:
			case widest >= TagFloat:
				elems[i] = numericTag(widest, numberOf[float64](t))
			default:
				elems[i] = numericTag(widest, numberOf[int64](t))
			}
		}
	}
	return ListOf(elems...)
}

// ToJSON renders t as JSON. Compounds keep insertion order, arrays become
// JSON arrays of numbers and non-finite floats become null.
func ToJSON(t Tag) (string, error) {
	var sb strings.Builder
	if err := WriteJSON(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteJSON appends the JSON form of t to sb.
func WriteJSON(sb *strings.Builder, t Tag) error {
	switch v := t.(type) {
	case nil:
		return fmt.Errorf("cannot render empty value as json")
	case Byte, Short, Int, Long:
		sb.WriteString(strconv.FormatInt(numberOf[int64](v), 10))
	case Float:
		writeJSONFloat(sb, float64(v), 32)
	case Double:
		writeJSONFloat(sb, float64(v), 64)
	case String:
		writeJSONString(sb, string(v))
	case ByteArray:
		writeJSONInts(sb, v)
	case IntArray:
		writeJSONInts(sb, v)
	case LongArray:
		writeJSONInts(sb, v)
	case *List:
		sb.WriteByte('[')
		for i, elem := range v.elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := WriteJSON(sb, elem); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case *Compound:
		sb.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSONString(sb, k)
			sb.WriteByte(':')
			if err := WriteJSON(sb, v.entries[k].tag); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("unsupported tag %T", t)
	}
	return nil
}

func writeJSONFloat(sb *strings.Builder, f float64, bits int) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		sb.WriteString("null")
		return
	}
	sb.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
}

func writeJSONInts[T int8 | int32 | int64](sb *strings.Builder, a []T) {
	sb.WriteByte('[')
	for i, x := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	}
	sb.WriteByte(']')
}

func writeJSONString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigit(c >> 4))
				sb.WriteByte(hexDigit(c & 0xF))
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'a' + (n - 10)
}

// ToAny converts t into plain Go values: integers keep their width, arrays
// become []int8, []int32 or []int64, lists become []any and compounds become
// map[string]any. Empty placeholder entries convert to nil.
func ToAny(t Tag) any {
	switch v := t.(type) {
	case Byte:
		return int8(v)
	case Short:
		return int16(v)
	case Int:
		return int32(v)
	case Long:
		return int64(v)
	case Float:
		return float32(v)
	case Double:
		return float64(v)
	case String:
		return string(v)
	case ByteArray:
		return []int8(v)
	case IntArray:
		return []int32(v)
	case LongArray:
		return []int64(v)
	case *List:
		out := make([]any, len(v.elems))
		for i, elem := range v.elems {
			out[i] = ToAny(elem)
		}
		return out
	case *Compound:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = ToAny(v.entries[k].tag)
		}
		return out
	default:
		return nil
	}
}
