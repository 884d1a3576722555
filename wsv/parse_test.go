package wsv

import (
	"testing"
)

func valuesOf(l *Line) []*string { return l.Values }

func strPtrsEqual(a, b []*string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if (a[i] == nil) != (b[i] == nil) {
			return false
		}
		if a[i] != nil && *a[i] != *b[i] {
			return false
		}
	}
	return true
}

func mustValues(vals ...interface{}) []*string {
	out := make([]*string, len(vals))
	for i, v := range vals {
		if v == nil {
			out[i] = nil
			continue
		}
		s := v.(string)
		out[i] = &s
	}
	return out
}

func TestParseDocument_BasicValues(t *testing.T) {
	doc, err := ParseDocument("a b c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(doc.Lines))
	}
	want := mustValues("a", "b", "c")
	if !strPtrsEqual(valuesOf(doc.Lines[0]), want) {
		t.Errorf("values = %v, want %v", renderValues(valuesOf(doc.Lines[0])), renderValues(want))
	}
}

func TestParseDocument_EmptyAndNullAndDash(t *testing.T) {
	doc, err := ParseDocument(`"" "-" -`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := mustValues("", "-", nil)
	if !strPtrsEqual(valuesOf(doc.Lines[0]), want) {
		t.Errorf("values = %v, want %v", renderValues(valuesOf(doc.Lines[0])), renderValues(want))
	}
}

func TestParseDocument_QuotedEscapes(t *testing.T) {
	doc, err := ParseDocument(`a "b""c" "d"/"e"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := mustValues("a", `b"c`, "d\ne")
	if !strPtrsEqual(valuesOf(doc.Lines[0]), want) {
		t.Errorf("values = %v, want %v", renderValues(valuesOf(doc.Lines[0])), renderValues(want))
	}
}

func TestParseDocument_TrailingLF(t *testing.T) {
	doc, err := ParseDocument("a\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Lines) != 2 {
		t.Fatalf("expected 2 lines (trailing empty), got %d", len(doc.Lines))
	}
	if len(doc.Lines[1].Values) != 0 {
		t.Errorf("expected trailing empty line, got %v", renderValues(doc.Lines[1].Values))
	}
}

func TestParseDocument_EmptyInput(t *testing.T) {
	doc, err := ParseDocument("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Lines) != 1 || len(doc.Lines[0].Values) != 0 {
		t.Fatalf("expected a single empty line, got %d lines", len(doc.Lines))
	}
}

func TestParseDocumentPreserving_WhitespaceAndComment(t *testing.T) {
	doc, err := ParseDocumentPreserving("  a  #hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := doc.Lines[0]
	if len(line.Values) != 1 || line.Values[0] == nil || *line.Values[0] != "a" {
		t.Fatalf("unexpected values: %v", renderValues(line.Values))
	}
	if len(line.Whitespaces) != 2 || line.Whitespaces[0] == nil || *line.Whitespaces[0] != "  " ||
		line.Whitespaces[1] == nil || *line.Whitespaces[1] != "  " {
		t.Fatalf("unexpected whitespaces: %v", line.Whitespaces)
	}
	if !line.HasComment() || *line.Comment != "hi" {
		t.Fatalf("unexpected comment: %v", line.Comment)
	}
	if got := SerializeLinePreserving(line); got != "  a  #hi" {
		t.Errorf("round-trip = %q, want %q", got, "  a  #hi")
	}
}

func TestParseDocumentPreserving_EmptyComment(t *testing.T) {
	doc, err := ParseDocumentPreserving("#")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := doc.Lines[0]
	if !line.HasComment() || *line.Comment != "" {
		t.Fatalf("expected empty captured comment, got %v", line.Comment)
	}
	if got := SerializeLinePreserving(line); got != "#" {
		t.Errorf("round-trip = %q, want %q", got, "#")
	}
}

func TestParseDocumentPreserving_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a b c",
		`"" "-" -`,
		"  a  #hi",
		"a\nb\n",
		"a #no trailing space before hash? nope there is one",
		"#just a comment",
		"   ",
	}
	for _, in := range inputs {
		doc, err := ParseDocumentPreserving(in)
		if err != nil {
			t.Fatalf("parse(%q): %v", in, err)
		}
		if got := doc.SerializePreserving(); got != in {
			t.Errorf("round-trip(%q) = %q", in, got)
		}
	}
}

func TestParseValue_Errors(t *testing.T) {
	if _, err := ParseValue(""); err != ErrNoValue {
		t.Errorf("empty: err = %v, want ErrNoValue", err)
	}
	if _, err := ParseValue("a b"); err != ErrMultipleValues {
		t.Errorf("two values: err = %v, want ErrMultipleValues", err)
	}
	if _, err := ParseLine("a\nb"); err != ErrMultipleLines {
		t.Errorf("two lines: err = %v, want ErrMultipleLines", err)
	}
	v, err := ParseValue("a")
	if err != nil || v == nil || *v != "a" {
		t.Errorf("ParseValue(a) = %v, %v", v, err)
	}
}

func TestParseErrors_Grammar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unclosed string eof", `"abc`, errStringNotClosed},
		{"unclosed string lf", "\"abc\nxyz", errStringNotClosed},
		{"char after string", `"a"b`, errInvalidCharAfterString},
		{"bad line break escape", `"a"/b`, errInvalidStringLineBreak},
		{"double quote in bare value", `a"b`, errInvalidDoubleQuoteInVal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument(tt.input)
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("err = %v (%T), want *ParseError", err, err)
			}
			if pe.Err != tt.want {
				t.Errorf("err.Err = %v, want %v", pe.Err, tt.want)
			}
		})
	}
}

func TestParseAsJaggedArray(t *testing.T) {
	out, err := ParseAsJaggedArray("a b\nc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || len(out[0]) != 2 || len(out[1]) != 1 {
		t.Fatalf("unexpected shape: %v", out)
	}
}

func renderValues(vs []*string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		if v == nil {
			out[i] = "<null>"
		} else {
			out[i] = *v
		}
	}
	return out
}
