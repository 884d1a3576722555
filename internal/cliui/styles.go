// Package cliui provides Lipgloss-based styled table output for the wsv
// command-line tool.
package cliui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the styled renderers used by the table subcommand.
type Styles struct {
	Header lipgloss.Style
	Border lipgloss.Style
	Null   lipgloss.Style
	Cell   lipgloss.Style
}

// NewStyles builds a Styles set, disabling color when colorEnabled is false.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return &Styles{
			Header: lipgloss.NewStyle(),
			Border: lipgloss.NewStyle(),
			Null:   lipgloss.NewStyle(),
			Cell:   lipgloss.NewStyle(),
		}
	}
	return &Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Null:   lipgloss.NewStyle().Faint(true),
		Cell:   lipgloss.NewStyle(),
	}
}

// StdoutIsTerminal reports whether stdout is an interactive terminal, used
// to decide the default for the --color=auto flag.
func StdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ResolveColor interprets the --color flag value ("auto", "always",
// "never") against the current stdout.
func ResolveColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return StdoutIsTerminal()
	}
}
