package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// openInput strips the compression framing the game wraps NBT files in.
// With "auto" the first bytes decide: 1f 8b is gzip, 78 is zlib, anything
// else is read as raw NBT.
func openInput(r io.Reader, compression string) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	if compression == "auto" {
		compression = sniffCompression(br)
	}
	switch compression {
	case "none":
		return io.NopCloser(br), nil
	case "gzip":
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return zr, nil
	case "zlib":
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open zlib stream: %w", err)
		}
		return zr, nil
	default:
		return nil, fmt.Errorf("unknown compression %q", compression)
	}
}

func sniffCompression(br *bufio.Reader) string {
	head, _ := br.Peek(2)
	switch {
	case len(head) == 2 && head[0] == 0x1f && head[1] == 0x8b:
		return "gzip"
	case len(head) >= 1 && head[0] == 0x78:
		return "zlib"
	default:
		return "none"
	}
}
