package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wsvfmt/wsv-go/wsv"
)

func newFmtCommand() *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse a WSV document and write it back out",
		Long: `fmt reads a WSV document and re-serializes it.

By default it preserves the original whitespace and comments. Each
value is written in its canonical form, so input whose values are
already canonical round-trips byte for byte, while a value quoted where
no quoting is needed (such as "d") comes back unquoted. With --canonical it drops
whitespace and comments and emits the minimal non-preserving form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAllInput(args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			doc, err := wsv.ParseDocumentPreserving(string(data))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			if canonical {
				fmt.Fprintln(cmd.OutOrStdout(), doc.Serialize())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc.SerializePreserving())
			return nil
		},
	}

	cmd.Flags().BoolVar(&canonical, "canonical", false, "drop whitespace and comments")
	return cmd
}
