package cliui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wsvfmt/wsv-go/wsv"
)

const (
	tablePadding   = 1
	nullLabel      = "∅"
	heavySeparator = "─"
)

// FormatTable renders a document's lines as a padded, column-aligned table.
// Lines are assumed to be rectangular; a short line is padded with nulls.
func FormatTable(doc *wsv.Document, styles *Styles) string {
	if len(doc.Lines) == 0 {
		return ""
	}

	cols := 0
	for _, line := range doc.Lines {
		if len(line.Values) > cols {
			cols = len(line.Values)
		}
	}
	if cols == 0 {
		return ""
	}

	cells := make([][]string, len(doc.Lines))
	widths := make([]int, cols)
	for i, line := range doc.Lines {
		row := make([]string, cols)
		for c := 0; c < cols; c++ {
			row[c] = cellText(line, c)
			if w := lipgloss.Width(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
		cells[i] = row
	}

	var b strings.Builder
	for i, row := range cells {
		for c, text := range row {
			styled := styles.Cell
			if text == nullLabel {
				styled = styles.Null
			}
			b.WriteString(styled.Render(pad(text, widths[c])))
			if c < cols-1 {
				b.WriteString(strings.Repeat(" ", tablePadding))
				b.WriteString(styles.Border.Render("│"))
				b.WriteString(strings.Repeat(" ", tablePadding))
			}
		}
		if i < len(cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellText(line *wsv.Line, col int) string {
	if col >= len(line.Values) || line.Values[col] == nil {
		return nullLabel
	}
	return *line.Values[col]
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
