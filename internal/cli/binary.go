package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wsvfmt/wsv-go/binarywsv"
	"github.com/wsvfmt/wsv-go/wsv"
)

func newToBinaryCommand() *cobra.Command {
	var noPreamble bool

	cmd := &cobra.Command{
		Use:   "to-binary [file]",
		Short: "Encode a WSV document as Binary WSV",
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

			out := binarywsv.Encode(doc, !noPreamble)
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&noPreamble, "no-preamble", false, "omit the BWSV1 preamble")
	return cmd
}

func newFromBinaryCommand() *cobra.Command {
	var noPreamble bool

	cmd := &cobra.Command{
		Use:   "from-binary [file]",
		Short: "Decode Binary WSV into textual WSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAllInput(args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			doc, err := binarywsv.Decode(data, !noPreamble)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), doc.Serialize())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noPreamble, "no-preamble", false, "input has no BWSV1 preamble")
	return cmd
}
