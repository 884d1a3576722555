package wsv

import "unicode/utf8"

// scanner walks a WSV string one Unicode code point at a time, tracking
// byte offset plus a (line, column) position measured in UTF-16 code
// units as required by §4.1/§4.2. It is the byte-oriented counterpart to
// the teacher's Lexer: advance/peek replace pos/col bookkeeping with a
// surrogate-aware decoder instead of assuming single-byte ASCII.
type scanner struct {
	input           string
	pos             int // byte offset of the next unconsumed code point
	lineIndexOffset int
	lineIndex       int // zero-based, relative to lineIndexOffset
	linePos         int // zero-based UTF-16 code units since the last '\n'
}

func newScanner(input string, lineIndexOffset int) *scanner {
	return &scanner{input: input, lineIndexOffset: lineIndexOffset}
}

func (s *scanner) eof() bool { return s.pos >= len(s.input) }

// peekCP returns the next code point without consuming it. It returns
// -1 at end of input.
func (s *scanner) peekCP() rune {
	if s.eof() {
		return -1
	}
	cp, _ := decodeCodePoint(s.input, s.pos)
	return cp
}

// advance consumes one code point (a surrogate pair counts as one),
// updating line/column bookkeeping, and returns it. A lone surrogate
// half is reported as errInvalidUTF16String at the current position.
func (s *scanner) advance() (rune, error) {
	if s.eof() {
		return -1, nil
	}
	cp, size := decodeCodePoint(s.input, s.pos)
	if cp == utf8.RuneError && size == 1 {
		// Not meaningful WSV input either way; treat as a single raw byte
		// so scanning can still make progress and report a sensible error
		// from the caller's grammar-level context.
		s.pos++
		s.linePos++
		return cp, nil
	}
	if isHighSurrogate(cp) {
		if s.pos+size >= len(s.input) {
			return 0, s.errAt(errInvalidUTF16String)
		}
		next, nsize := decodeCodePoint(s.input, s.pos+size)
		if !isLowSurrogate(next) {
			return 0, s.errAt(errInvalidUTF16String)
		}
		s.pos += size + nsize
		s.linePos += 2
		return cp, nil
	}
	if isLowSurrogate(cp) {
		return 0, s.errAt(errInvalidUTF16String)
	}
	s.pos += size
	if cp == '\n' {
		s.lineIndex++
		s.linePos = 0
	} else {
		s.linePos += utf16Units(cp)
	}
	return cp, nil
}

// errAt builds a *ParseError anchored at the scanner's current position.
func (s *scanner) errAt(base error) *ParseError {
	return &ParseError{
		Err:       base,
		Offset:    s.pos,
		LineIndex: s.lineIndexOffset + s.lineIndex,
		LinePos:   s.linePos,
	}
}
