// Command wsv reads, writes, and converts WSV and Binary WSV documents.
//
// If no file argument is given, subcommands read from stdin.
package main

import (
	"os"

	"github.com/wsvfmt/wsv-go/internal/cli"
	"github.com/wsvfmt/wsv-go/internal/logging"
)

//nolint:gochecknoglobals // build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}
	return 0
}
