package wsv

import "strings"

// SerializeValue renders a single value per §4.3's five rules.
func SerializeValue(v *string) string {
	if v == nil {
		return "-"
	}
	s := *v
	switch {
	case s == "":
		return `""`
	case s == "-":
		return `"-"`
	case hasSpecialCodeUnit(s):
		return quoteValue(s)
	default:
		return s
	}
}

// hasSpecialCodeUnit reports whether s contains a '"', '#', '\n', or any
// WSV whitespace code point — the condition that forces quoting (§4.3
// rule 4).
func hasSpecialCodeUnit(s string) bool {
	for _, r := range s {
		if r == '"' || r == '#' || r == '\n' || isWSVWhitespace(r) {
			return true
		}
	}
	return false
}

// quoteValue wraps s in double quotes, doubling embedded quotes and
// replacing embedded line feeds with the "/" escape (§4.3 rule 4).
func quoteValue(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`""`)
		case '\n':
			sb.WriteString(`"/"`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Serialize renders the document in non-preserving form: each line's
// values joined by a single space, lines joined by '\n'.
func (d *Document) Serialize() string {
	lines := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = SerializeLineNonPreserving(l)
	}
	return strings.Join(lines, "\n")
}

// SerializePreserving renders the document using recorded whitespace and
// comments, reproducing a preserving-parsed input byte-for-byte (P1) when
// its values were written in canonical form. Values always go through
// SerializeValue, so needless quotes in the input are dropped.
func (d *Document) SerializePreserving() string {
	lines := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = SerializeLinePreserving(l)
	}
	return strings.Join(lines, "\n")
}

// SerializeLineNonPreserving joins a line's serialized values with a
// single space and emits no comment (§4.3).
func SerializeLineNonPreserving(l *Line) string {
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		parts[i] = SerializeValue(v)
	}
	return strings.Join(parts, " ")
}

// SerializeLinePreserving renders a line using its recorded whitespace
// slots and comment (§4.3).
func SerializeLinePreserving(l *Line) string {
	var sb strings.Builder
	for i, v := range l.Values {
		sb.WriteString(defaultedWhitespace(l.whitespaceSlot(i), i))
		sb.WriteString(SerializeValue(v))
	}
	switch {
	case l.hasTrailingSlot():
		if slot := l.whitespaceSlot(len(l.Values)); slot != nil {
			sb.WriteString(*slot)
		}
	case l.HasComment() && len(l.Values) > 0:
		sb.WriteByte(' ')
	}
	if l.HasComment() {
		sb.WriteByte('#')
		sb.WriteString(*l.Comment)
	}
	return sb.String()
}

// defaultedWhitespace returns the recorded whitespace at slot i, or the
// default gap ("" for the first value, " " otherwise) if the slot is
// absent or null.
func defaultedWhitespace(slot *string, i int) string {
	if slot != nil {
		return *slot
	}
	if i == 0 {
		return ""
	}
	return " "
}
