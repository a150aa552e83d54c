// Package mutf8 converts between Go strings and Java's modified UTF-8, the
// string encoding used on the NBT wire.
//
// Modified UTF-8 differs from UTF-8 in two ways: U+0000 is written as the
// two bytes C0 80, and code points above U+FFFF are written as a UTF-16
// surrogate pair with each half taking three bytes.
package mutf8

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalid is returned for byte sequences that are not modified UTF-8.
var ErrInvalid = errors.New("invalid modified utf-8")

// Decode converts modified UTF-8 bytes into a Go string.
//
// Plain four byte UTF-8 sequences are accepted as well since third party
// writers commonly emit them. Unpaired surrogates decode to U+FFFD.
func Decode(b []byte) (string, error) {
	if isASCII(b) {
		return string(b), nil
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			out = append(out, c)
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || !isCont(b[i+1]) {
				return "", invalidAt(i)
			}
			r := rune(c&0x1F)<<6 | rune(b[i+1]&0x3F)
			out = utf8.AppendRune(out, r)
			i += 2
		case c&0xF0 == 0xE0:
			r, ok := decode3(b[i:])
			if !ok {
				return "", invalidAt(i)
			}
			i += 3
			if utf16.IsSurrogate(r) {
				if r < 0xDC00 {
					if lo, ok := decode3(b[i:]); ok && lo >= 0xDC00 && lo <= 0xDFFF {
						r = utf16.DecodeRune(r, lo)
						i += 3
					} else {
						r = utf8.RuneError
					}
				} else {
					r = utf8.RuneError
				}
			}
			out = utf8.AppendRune(out, r)
		case c&0xF8 == 0xF0:
			r, size := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError && size <= 1 {
				return "", invalidAt(i)
			}
			out = append(out, b[i:i+size]...)
			i += size
		default:
			return "", invalidAt(i)
		}
	}
	return string(out), nil
}

// Encode converts s into modified UTF-8. Invalid UTF-8 in s is replaced
// with U+FFFD.
func Encode(s string) []byte {
	return Append(make([]byte, 0, EncodedLen(s)), s)
}

// Append appends the modified UTF-8 form of s to dst.
func Append(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xC0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			dst = append3(dst, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			dst = append3(dst, hi)
			dst = append3(dst, lo)
		}
	}
	return dst
}

// EncodedLen returns the number of bytes Encode produces for s.
func EncodedLen(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}
	return n
}

func append3(dst []byte, r rune) []byte {
	return append(dst, 0xE0|byte(r>>12), 0x80|byte((r>>6)&0x3F), 0x80|byte(r&0x3F))
}

func decode3(b []byte) (rune, bool) {
	if len(b) < 3 || b[0]&0xF0 != 0xE0 || !isCont(b[1]) || !isCont(b[2]) {
		return 0, false
	}
	return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), true
}

func isCont(c byte) bool {
	return c&0xC0 == 0x80
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c == 0 || c >= 0x80 {
			return false
		}
	}
	return true
}

func invalidAt(i int) error {
	return fmt.Errorf("%w at byte %d", ErrInvalid, i)
}
