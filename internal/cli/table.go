package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wsvfmt/wsv-go/internal/cliui"
	"github.com/wsvfmt/wsv-go/wsv"
)

func newTableCommand(color *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [file]",
		Short: "Render a WSV document as an aligned, colorized table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAllInput(args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			doc, err := wsv.ParseDocument(string(data))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			styles := cliui.NewStyles(cliui.ResolveColor(*color))
			fmt.Fprintln(cmd.OutOrStdout(), cliui.FormatTable(doc, styles))
			return nil
		},
	}
	return cmd
}
