package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wsvfmt/wsv-go/wsv"
)

func newValuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values [file]",
		Short: "Print each line's bare values, tab-separated",
		Long: `values strips quoting, whitespace, and comments and prints the
raw value of each field, one line per WSV line, fields separated by a
tab. Null fields print as an empty field.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAllInput(args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			rows, err := wsv.ParseAsJaggedArray(string(data))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, row := range rows {
				fields := make([]string, len(row))
				for i, v := range row {
					if v != nil {
						fields[i] = *v
					}
				}
				fmt.Fprintln(out, strings.Join(fields, "\t"))
			}
			return nil
		},
	}
	return cmd
}
