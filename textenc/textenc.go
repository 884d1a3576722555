// Package textenc implements the text-encoding collaborator that
// wsv.Document.Bytes/ParseBytes delegate to: byte-order-mark detection
// plus UTF-8/UTF-16/UTF-32 transcoding. The varint56 and binarywsv
// packages never import this package; within wsv, only the
// Document.TextEncoding field and Document.Bytes/ParseBytes use it, so
// parsing and serializing strings stay independent of text encoding.
package textenc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding identifies a text encoding detected from, or to be used when
// writing, a byte stream.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	default:
		return "unknown"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// DetectBOM inspects the leading bytes of data and reports the encoding
// they signal, plus how many bytes the BOM itself occupies. Absent any
// recognized BOM, it reports UTF8 with a zero-length BOM (UTF-8 is the
// default when no marker is present).
func DetectBOM(data []byte) (enc Encoding, bomLen int) {
	switch {
	case bytes.HasPrefix(data, bomUTF32LE):
		return UTF32LE, 4
	case bytes.HasPrefix(data, bomUTF32BE):
		return UTF32BE, 4
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8, 3
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE, 2
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE, 2
	default:
		return UTF8, 0
	}
}

// Decode is the utf8_to_string capability: it converts data, assumed to
// be in enc (with any BOM already stripped by the caller or detected via
// DetectBOM), into a Go string.
func Decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case UTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("textenc: invalid UTF-8")
		}
		return string(data), nil
	case UTF16LE, UTF16BE:
		return decodeUTF16(data, enc)
	case UTF32LE, UTF32BE:
		return decodeUTF32(data, enc)
	default:
		return "", fmt.Errorf("textenc: unknown encoding %d", enc)
	}
}

// Encode is the string_to_utf8 capability's mirror: it renders s as
// bytes in enc.
func Encode(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case UTF8:
		return []byte(s), nil
	case UTF16LE, UTF16BE:
		return encodeUTF16(s, enc)
	case UTF32LE, UTF32BE:
		return encodeUTF32(s, enc)
	default:
		return nil, fmt.Errorf("textenc: unknown encoding %d", enc)
	}
}

// JoinLines joins lines with the platform-neutral line separator
// (U+000A), regardless of host OS.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func utf16Codec(enc Encoding) encoding.Encoding {
	if enc == UTF16BE {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

func decodeUTF16(data []byte, enc Encoding) (string, error) {
	out, _, err := transform.Bytes(utf16Codec(enc).NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("textenc: decode %s: %w", enc, err)
	}
	return string(out), nil
}

func encodeUTF16(s string, enc Encoding) ([]byte, error) {
	out, _, err := transform.Bytes(utf16Codec(enc).NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode %s: %w", enc, err)
	}
	return out, nil
}

// decodeUTF32/encodeUTF32 are hand-rolled: the pack's one carrier of
// golang.org/x/text (the gomdlint example) never pulls in an x/text
// UTF-32 transform, and adding a second text-encoding dependency just
// for 4-byte code units is not worth it when the format is this simple.
func decodeUTF32(data []byte, enc Encoding) (string, error) {
	if len(data)%4 != 0 {
		return "", fmt.Errorf("textenc: truncated UTF-32 input")
	}
	runes := make([]rune, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		var cp uint32
		if enc == UTF32BE {
			cp = uint32(data[i])<<24 | uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
		} else {
			cp = uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
		}
		runes = append(runes, rune(cp))
	}
	return string(runes), nil
}

func encodeUTF32(s string, enc Encoding) ([]byte, error) {
	out := make([]byte, 0, len(s)*4)
	for _, r := range s {
		out = appendCP(out, uint32(r), enc)
	}
	return out, nil
}

func appendCP(out []byte, cp uint32, enc Encoding) []byte {
	if enc == UTF32BE {
		return append(out, byte(cp>>24), byte(cp>>16), byte(cp>>8), byte(cp))
	}
	return append(out, byte(cp), byte(cp>>8), byte(cp>>16), byte(cp>>24))
}
