// Package cli provides the Cobra command structure for the wsv tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/wsvfmt/wsv-go/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root wsv command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "wsv",
		Short: "Read, write, and convert WSV and Binary WSV documents",
		Long: `wsv is a command-line tool for Whitespace-Separated Values.

It formats and validates WSV text, extracts bare values, and converts
between the textual format and its compact Binary WSV encoding.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize table output: auto, always, never")

	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newValuesCommand())
	rootCmd.AddCommand(newToBinaryCommand())
	rootCmd.AddCommand(newFromBinaryCommand())
	rootCmd.AddCommand(newTableCommand(&color))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
