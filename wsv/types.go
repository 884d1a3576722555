package wsv

import "github.com/wsvfmt/wsv-go/textenc"

// Str returns a pointer to s, for building a non-null Value literal.
// A bare nil *string denotes WSV's null (§3).
func Str(s string) *string { return &s }

// Line is an ordered sequence of values plus the optional decoration
// used only by preserving parse/serialize (§3).
type Line struct {
	// Values holds the line's fields. A nil entry is WSV null; a non-nil
	// entry (even pointing at "") is a value string.
	Values []*string

	// Whitespaces holds the exact whitespace run that preceded each
	// value, plus an optional trailing slot for whitespace after the
	// last value (before a comment, if any). Its length is 0 (absent,
	// meaning "all defaults"), len(Values), or len(Values)+1. A nil
	// slot means "use the default gap".
	Whitespaces []*string

	// Comment is the line's trailing "#..." text, or nil if the line
	// has no comment. A non-nil pointer to "" is a present, empty
	// comment.
	Comment *string
}

// NewLine builds a Line from values with no whitespace/comment
// decoration (all defaults).
func NewLine(values ...*string) *Line {
	return &Line{Values: values}
}

// SetWhitespaces validates and installs ws as the line's whitespace
// slots. Each non-nil slot must be a non-empty run of WSV whitespace
// code points, except slot 0 which may legitimately be "" (§3).
func (l *Line) SetWhitespaces(ws []*string) error {
	if len(ws) != 0 && len(ws) != len(l.Values) && len(ws) != len(l.Values)+1 {
		return &ValidationError{
			Field:   "whitespaces",
			Message: "length must be 0, len(values), or len(values)+1",
		}
	}
	for i, slot := range ws {
		if slot == nil {
			continue
		}
		if *slot == "" {
			if i == 0 {
				continue
			}
			return &ValidationError{Field: "whitespaces", Message: "non-leading slot must not be empty"}
		}
		if !isAllWSVWhitespace(*slot) {
			return &ValidationError{Field: "whitespaces", Message: "slot contains a non-whitespace code point"}
		}
		if err := validateNoLoneSurrogate(*slot); err != nil {
			return &ValidationError{Field: "whitespaces", Message: err.Error()}
		}
	}
	l.Whitespaces = ws
	return nil
}

// SetComment validates and installs c as the line's comment. c may be
// nil (no comment). A non-nil comment must contain no line feed and no
// unpaired UTF-16 surrogate (§3, §7.3).
func (l *Line) SetComment(c *string) error {
	if c == nil {
		l.Comment = nil
		return nil
	}
	for _, r := range *c {
		if r == '\n' {
			return &ValidationError{Field: "comment", Message: "must not contain a line feed"}
		}
	}
	if err := validateNoLoneSurrogate(*c); err != nil {
		return &ValidationError{Field: "comment", Message: err.Error()}
	}
	l.Comment = c
	return nil
}

// HasComment reports whether the line carries a comment.
func (l *Line) HasComment() bool { return l.Comment != nil }

// whitespaceSlot returns the recorded whitespace at index i (nil if
// absent or out of range).
func (l *Line) whitespaceSlot(i int) *string {
	if i < 0 || i >= len(l.Whitespaces) {
		return nil
	}
	return l.Whitespaces[i]
}

// hasTrailingSlot reports whether Whitespaces carries the optional
// trailing slot (index len(Values)).
func (l *Line) hasTrailingSlot() bool {
	return len(l.Whitespaces) > len(l.Values)
}

// Document is an ordered sequence of lines plus a text-encoding tag
// (§3), used only by Bytes/ParseBytes; in-memory operations ignore it.
type Document struct {
	Lines        []*Line
	TextEncoding textenc.Encoding
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddLine appends l to the document.
func (d *Document) AddLine(l *Line) {
	d.Lines = append(d.Lines, l)
}
