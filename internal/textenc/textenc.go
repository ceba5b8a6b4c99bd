// Package textenc detects and decodes the text encodings found in HWPX parts.
package textenc

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies one of the supported text encodings.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
)

func (e Encoding) String() string {
	switch e {
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// sampleSize bounds the zero-byte heuristic.
const sampleSize = 1024

// Detect classifies b by byte-order mark, then by the position of zero bytes.
func Detect(b []byte) Encoding {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return UTF8
	case bytes.HasPrefix(b, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(b, bomUTF16BE):
		return UTF16BE
	}

	n := len(b)
	if n > sampleSize {
		n = sampleSize
	}
	var zeroEven, zeroOdd int
	for i := 0; i < n; i++ {
		if b[i] != 0 {
			continue
		}
		if i%2 == 0 {
			zeroEven++
		} else {
			zeroOdd++
		}
	}

	// xx 00 xx 00 is little endian, 00 xx 00 xx big endian.
	if zeroOdd > zeroEven*2 {
		return UTF16LE
	}
	if zeroEven > zeroOdd*2 {
		return UTF16BE
	}
	return UTF8
}

// Decode converts b to a string using the detected encoding, without the BOM.
// Input outside the supported encodings is returned as best-effort UTF-8.
func Decode(b []byte) string {
	switch Detect(b) {
	case UTF16LE:
		return decodeUTF16(bytes.TrimPrefix(b, bomUTF16LE), unicode.LittleEndian)
	case UTF16BE:
		return decodeUTF16(bytes.TrimPrefix(b, bomUTF16BE), unicode.BigEndian)
	default:
		return string(bytes.TrimPrefix(b, bomUTF8))
	}
}

func decodeUTF16(b []byte, order unicode.Endianness) string {
	out, err := unicode.UTF16(order, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
