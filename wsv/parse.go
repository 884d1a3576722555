package wsv

// ParseOptions configures ParseDocumentWithOptions.
type ParseOptions struct {
	// Preserving enables whitespace/comment capture (§4.2).
	Preserving bool

	// LineIndexOffset adjusts reported line indices for callers parsing
	// a fragment of a larger document (§4.2).
	LineIndexOffset int
}

// ParseDocument parses s in non-preserving mode: only values are kept.
func ParseDocument(s string) (*Document, error) {
	return ParseDocumentWithOptions(s, ParseOptions{})
}

// ParseDocumentPreserving parses s, capturing whitespace and comments so
// that Document.SerializePreserving reproduces s byte-for-byte (P1) when
// every value in s is written in canonical form; the original quoting of
// a value is not recorded.
func ParseDocumentPreserving(s string) (*Document, error) {
	return ParseDocumentWithOptions(s, ParseOptions{Preserving: true})
}

// ParseDocumentWithOptions parses s per opts.
func ParseDocumentWithOptions(s string, opts ParseOptions) (*Document, error) {
	sc := newScanner(s, opts.LineIndexOffset)
	doc := &Document{}
	for {
		line, sawLF, err := parseLine(sc, opts.Preserving)
		if err != nil {
			return nil, err
		}
		doc.Lines = append(doc.Lines, line)
		if !sawLF {
			return doc, nil
		}
	}
}

// ParseAsJaggedArray is the non-preserving parse, returned as a raw
// list of lines of optional strings rather than *Line/*Document (§4.2).
func ParseAsJaggedArray(s string) ([][]*string, error) {
	doc, err := ParseDocument(s)
	if err != nil {
		return nil, err
	}
	out := make([][]*string, len(doc.Lines))
	for i, l := range doc.Lines {
		out[i] = l.Values
	}
	return out, nil
}

// ParseLine parses s as a single line. It fails with ErrMultipleLines if
// s contains more than one line (§7.6).
func ParseLine(s string) (*Line, error) {
	doc, err := ParseDocumentPreserving(s)
	if err != nil {
		return nil, err
	}
	if len(doc.Lines) != 1 {
		return nil, ErrMultipleLines
	}
	return doc.Lines[0], nil
}

// ParseValue parses s as a single value. It fails with ErrNoValue or
// ErrMultipleValues if s does not contain exactly one value (§7.6).
func ParseValue(s string) (*string, error) {
	line, err := ParseLine(s)
	if err != nil {
		return nil, err
	}
	switch len(line.Values) {
	case 0:
		return nil, ErrNoValue
	case 1:
		return line.Values[0], nil
	default:
		return nil, ErrMultipleValues
	}
}

// parseLine scans one line starting at sc's current position. It returns
// the parsed line, whether a line-terminating '\n' was consumed, and any
// grammar error.
func parseLine(sc *scanner, preserving bool) (*Line, bool, error) {
	line := &Line{}
	var ws []*string

	for {
		wsStart := sc.pos
		for isWSVWhitespace(sc.peekCP()) {
			if _, err := sc.advance(); err != nil {
				return nil, false, err
			}
		}
		var wsSlot *string
		if sc.pos > wsStart {
			run := sc.input[wsStart:sc.pos]
			wsSlot = &run
		}

		switch cp := sc.peekCP(); {
		case cp == -1:
			if preserving {
				ws = append(ws, wsSlot)
				line.Whitespaces = ws
			}
			return line, false, nil

		case cp == '\n':
			if _, err := sc.advance(); err != nil {
				return nil, false, err
			}
			if preserving {
				ws = append(ws, wsSlot)
				line.Whitespaces = ws
			}
			return line, true, nil

		case cp == '#':
			if _, err := sc.advance(); err != nil {
				return nil, false, err
			}
			commentStart := sc.pos
			for {
				c := sc.peekCP()
				if c == -1 || c == '\n' {
					break
				}
				if _, err := sc.advance(); err != nil {
					return nil, false, err
				}
			}
			commentText := sc.input[commentStart:sc.pos]
			sawLF := false
			if sc.peekCP() == '\n' {
				if _, err := sc.advance(); err != nil {
					return nil, false, err
				}
				sawLF = true
			}
			if preserving {
				ws = append(ws, wsSlot)
				line.Whitespaces = ws
				line.Comment = &commentText
			}
			return line, sawLF, nil

		default:
			if preserving {
				ws = append(ws, wsSlot)
			}
			val, err := parseValueToken(sc)
			if err != nil {
				return nil, false, err
			}
			line.Values = append(line.Values, val)
		}
	}
}

// parseValueToken scans one value: a quoted string or a bare token.
func parseValueToken(sc *scanner) (*string, error) {
	if sc.peekCP() == '"' {
		return parseQuotedString(sc)
	}
	return parseBareValue(sc)
}

func parseQuotedString(sc *scanner) (*string, error) {
	if _, err := sc.advance(); err != nil { // consume opening quote
		return nil, err
	}
	buf := make([]byte, 0, 16)
	for {
		switch cp := sc.peekCP(); {
		case cp == -1:
			return nil, sc.errAt(errStringNotClosed)
		case cp == '\n':
			return nil, sc.errAt(errStringNotClosed)
		case cp == '"':
			if _, err := sc.advance(); err != nil { // consume tentative close
				return nil, err
			}
			switch next := sc.peekCP(); {
			case next == '"':
				buf = append(buf, '"')
				if _, err := sc.advance(); err != nil {
					return nil, err
				}
			case next == '/':
				if _, err := sc.advance(); err != nil { // consume '/'
					return nil, err
				}
				if sc.peekCP() != '"' {
					return nil, sc.errAt(errInvalidStringLineBreak)
				}
				if _, err := sc.advance(); err != nil { // consume reopening quote
					return nil, err
				}
				buf = append(buf, '\n')
			case next == -1 || next == '\n' || next == '#' || isWSVWhitespace(next):
				s := string(buf)
				return &s, nil
			default:
				return nil, sc.errAt(errInvalidCharAfterString)
			}
		default:
			start := sc.pos
			_, size := decodeCodePoint(sc.input, sc.pos)
			if _, err := sc.advance(); err != nil {
				return nil, err
			}
			buf = append(buf, sc.input[start:start+size]...)
		}
	}
}

func parseBareValue(sc *scanner) (*string, error) {
	start := sc.pos
	for {
		cp := sc.peekCP()
		if cp == -1 || cp == '\n' || cp == '#' || isWSVWhitespace(cp) {
			break
		}
		if cp == '"' {
			return nil, sc.errAt(errInvalidDoubleQuoteInVal)
		}
		if _, err := sc.advance(); err != nil {
			return nil, err
		}
	}
	raw := sc.input[start:sc.pos]
	if raw == "-" {
		return nil, nil
	}
	return &raw, nil
}
