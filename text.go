package nbt

import (
	"io"
	"strconv"
	"strings"
)

const textIndent = "  "

// arrayPreview bounds how many array elements the text form shows.
const arrayPreview = 16

// WriteText writes a human readable, indented rendering of a named tag in
// the classic TAG_Kind('name'): value layout.
func WriteText(w io.Writer, name string, t Tag) error {
	var sb strings.Builder
	writeTextTag(&sb, name, true, t, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

// Sprint renders an unnamed tag on a single line.
func Sprint(t Tag) string {
	var sb strings.Builder
	writeInline(&sb, t)
	return sb.String()
}

func writeTextTag(sb *strings.Builder, name string, named bool, t Tag, level int) {
	sb.WriteString(strings.Repeat(textIndent, level))
	sb.WriteString("TAG_")
	if t == nil {
		sb.WriteString("End")
	} else {
		sb.WriteString(t.Type().String())
	}
	if named {
		sb.WriteString("(")
		sb.WriteString(strconv.Quote(name))
		sb.WriteString(")")
	} else {
		sb.WriteString("(None)")
	}
	sb.WriteString(": ")
	switch v := t.(type) {
	case *List:
		sb.WriteString(strconv.Itoa(v.Len()))
		sb.WriteString(" entries of type ")
		sb.WriteString(v.elemType.String())
		sb.WriteString("\n")
		writeBlock(sb, level, func() {
			for _, elem := range v.elems {
				writeTextTag(sb, "", false, elem, level+1)
			}
		})
	case *Compound:
		sb.WriteString(strconv.Itoa(v.Len()))
		sb.WriteString(" entries\n")
		writeBlock(sb, level, func() {
			for _, k := range v.keys {
				writeTextTag(sb, k, true, v.entries[k].tag, level+1)
			}
		})
	default:
		writeInline(sb, t)
		sb.WriteString("\n")
	}
}

func writeBlock(sb *strings.Builder, level int, body func()) {
	pad := strings.Repeat(textIndent, level)
	sb.WriteString(pad)
	sb.WriteString("{\n")
	body()
	sb.WriteString(pad)
	sb.WriteString("}\n")
}

func writeInline(sb *strings.Builder, t Tag) {
	switch v := t.(type) {
	case nil:
		sb.WriteString("<empty>")
	case Byte:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteString("b")
	case Short:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteString("s")
	case Int:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Long:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteString("L")
	case Float:
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		sb.WriteString("f")
	case Double:
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
		sb.WriteString("d")
	case String:
		sb.WriteString(strconv.Quote(string(v)))
	case ByteArray:
		writeArrayInline(sb, "B", v)
	case IntArray:
		writeArrayInline(sb, "I", v)
	case LongArray:
		writeArrayInline(sb, "L", v)
	case *List:
		sb.WriteString("[")
		for i, elem := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeInline(sb, elem)
		}
		sb.WriteString("]")
	case *Compound:
		sb.WriteString("{")
		for i, k := range v.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteString(": ")
			writeInline(sb, v.entries[k].tag)
		}
		sb.WriteString("}")
	}
}

func writeArrayInline[T int8 | int32 | int64](sb *strings.Builder, prefix string, a []T) {
	sb.WriteString("[")
	sb.WriteString(prefix)
	sb.WriteString(";")
	for i, x := range a {
		if i == arrayPreview {
			sb.WriteString(" ... ")
			sb.WriteString(strconv.Itoa(len(a) - arrayPreview))
			sb.WriteString(" more")
			break
		}
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	}
	sb.WriteString("]")
}
