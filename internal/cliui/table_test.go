package cliui_test

import (
	"strings"
	"testing"

	"github.com/wsvfmt/wsv-go/internal/cliui"
	"github.com/wsvfmt/wsv-go/wsv"
)

func TestFormatTable_Empty(t *testing.T) {
	t.Parallel()

	doc := wsv.NewDocument()
	if got := cliui.FormatTable(doc, cliui.NewStyles(false)); got != "" {
		t.Errorf("FormatTable(empty doc) = %q, want empty string", got)
	}
}

func TestFormatTable_PadsShortRowsWithNull(t *testing.T) {
	t.Parallel()

	doc, err := wsv.ParseDocument("a b\nc")
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	out := cliui.FormatTable(doc, cliui.NewStyles(false))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "∅") {
		t.Errorf("short row %q should be padded with the null label", lines[1])
	}
}

func TestFormatTable_NullValue(t *testing.T) {
	t.Parallel()

	doc, err := wsv.ParseDocument("a -")
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	out := cliui.FormatTable(doc, cliui.NewStyles(false))
	if !strings.Contains(out, "∅") {
		t.Errorf("FormatTable output %q should render null as ∅", out)
	}
}
