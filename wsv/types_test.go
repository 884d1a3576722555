package wsv

import "testing"

func TestLineSetComment_RejectsLF(t *testing.T) {
	line := NewLine(Str("a"))
	bad := "has\nlf"
	if err := line.SetComment(&bad); err == nil {
		t.Fatal("expected error for comment containing LF")
	}
	ok := "fine"
	if err := line.SetComment(&ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !line.HasComment() || *line.Comment != "fine" {
		t.Fatalf("comment not set: %v", line.Comment)
	}
	if err := line.SetComment(nil); err != nil {
		t.Fatalf("unexpected error clearing comment: %v", err)
	}
	if line.HasComment() {
		t.Fatal("expected comment cleared")
	}
}

func TestLineSetWhitespaces_Validation(t *testing.T) {
	line := NewLine(Str("a"), Str("b"))

	leadingEmpty := ""
	if err := line.SetWhitespaces([]*string{&leadingEmpty, Str(" ")}); err != nil {
		t.Errorf("leading empty slot should be allowed: %v", err)
	}

	nonLeadingEmpty := ""
	if err := line.SetWhitespaces([]*string{Str(" "), &nonLeadingEmpty}); err == nil {
		t.Error("expected error for empty non-leading slot")
	}

	notWhitespace := "x"
	if err := line.SetWhitespaces([]*string{Str(" "), &notWhitespace}); err == nil {
		t.Error("expected error for non-whitespace slot content")
	}

	if err := line.SetWhitespaces([]*string{Str(" "), Str(" "), Str(" ")}); err != nil {
		t.Errorf("trailing slot should be allowed: %v", err)
	}

	if err := line.SetWhitespaces([]*string{Str(" ")}); err == nil {
		t.Error("expected error for wrong-length whitespace slice")
	}
}
