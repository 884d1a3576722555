// Package binarywsv implements Binary WSV, a compact binary framing of a
// wsv.Document built on top of varint56. A complete binary document is a
// 5-byte preamble ("BWSV1") followed by a sequence of value records; a
// value record is a VarInt56 tag followed by zero or more UTF-8 payload
// bytes. Lines are separated by a dedicated line-break tag.
package binarywsv

import (
	"errors"
	"fmt"

	"github.com/wsvfmt/wsv-go/varint56"
	"github.com/wsvfmt/wsv-go/wsv"
)

// preamble identifies version 1 of the binary format: "BWSV1".
var preamble = [5]byte{0x42, 0x57, 0x53, 0x56, 0x31}

// Tag values a decoded VarInt56 dispatches on.
const (
	tagLineBreak = 0
	tagNull      = 1
	tagEmpty     = 2
	tagStringMin = 3
)

// Errors per §7.5.
var (
	ErrNoPreamble         = errors.New("binarywsv: missing BWSV preamble")
	ErrUnsupportedVersion = errors.New("binarywsv: unsupported binary WSV version")
	ErrTruncatedString    = errors.New("binarywsv: cannot fully read string")
)

// Error wraps a binary decode failure with the byte offset at which it
// was detected.
type Error struct {
	Err    error
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("binarywsv: %v at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }

func errAt(err error, offset int) *Error {
	return &Error{Err: err, Offset: offset}
}

// growBuf is an append-backed byte buffer seeded with the policy starting
// capacity from §4.5 ("a growable byte buffer that doubles when full,
// starting at 4096 bytes"); append already gives amortized O(1) growth,
// so no hand-rolled doubling is needed, only the starting capacity.
type growBuf struct {
	b []byte
}

func newGrowBuf() *growBuf {
	return &growBuf{b: make([]byte, 0, 4096)}
}

func (g *growBuf) writeByte(b byte) { g.b = append(g.b, b) }
func (g *growBuf) write(p []byte)   { g.b = append(g.b, p...) }

func (g *growBuf) writeVarInt56(n uint64) {
	enc, err := varint56.Encode(n)
	if err != nil {
		// n is always derived from a length bound below MaxValue in
		// this package; a failure here means a caller-supplied string
		// is absurdly large.
		panic(err)
	}
	g.write(enc)
}

// Encode renders doc as Binary WSV. If withPreamble is true, the 5-byte
// "BWSV1" preamble is emitted first.
func Encode(doc *wsv.Document, withPreamble bool) []byte {
	buf := newGrowBuf()
	if withPreamble {
		buf.write(preamble[:])
	}
	for i, line := range doc.Lines {
		for _, v := range line.Values {
			encodeValue(buf, v)
		}
		if i < len(doc.Lines)-1 {
			buf.writeByte(0x01) // canonical VarInt56(0): line break
		}
	}
	return buf.b
}

func encodeValue(buf *growBuf, v *string) {
	switch {
	case v == nil:
		buf.writeVarInt56(tagNull)
	case *v == "":
		buf.writeVarInt56(tagEmpty)
	default:
		payload := []byte(*v)
		buf.writeVarInt56(uint64(len(payload)) + 2)
		buf.write(payload)
	}
}

// Decode parses Binary WSV data into a document. If expectPreamble is
// true, data must begin with the "BWSV1" preamble.
func Decode(data []byte, expectPreamble bool) (*wsv.Document, error) {
	offset := 0
	if expectPreamble {
		n, err := checkPreamble(data)
		if err != nil {
			return nil, err
		}
		offset = n
	}

	doc := wsv.NewDocument()
	line := wsv.NewLine()

	for offset < len(data) {
		tag, length, err := varint56.Decode(data, offset)
		if err != nil {
			return nil, errAt(err, offset)
		}
		offset += length

		switch {
		case tag == tagLineBreak:
			doc.AddLine(line)
			line = wsv.NewLine()
		case tag == tagNull:
			line.Values = append(line.Values, nil)
		case tag == tagEmpty:
			empty := ""
			line.Values = append(line.Values, &empty)
		case tag >= tagStringMin:
			strLen := int(tag - 2) // a record tagged L carries L-2 payload bytes
			if offset+strLen > len(data) {
				return nil, errAt(ErrTruncatedString, offset)
			}
			s := string(data[offset : offset+strLen])
			line.Values = append(line.Values, &s)
			offset += strLen
		default:
			return nil, errAt(varint56.ErrInvalidVarInt56, offset)
		}
	}

	doc.AddLine(line)
	return doc, nil
}

func checkPreamble(data []byte) (int, error) {
	if len(data) < 4 || data[0] != preamble[0] || data[1] != preamble[1] ||
		data[2] != preamble[2] || data[3] != preamble[3] {
		return 0, errAt(ErrNoPreamble, 0)
	}
	if len(data) < 5 {
		return 0, errAt(ErrUnsupportedVersion, 4)
	}
	if data[4] != preamble[4] {
		return 0, errAt(ErrUnsupportedVersion, 4)
	}
	return 5, nil
}
