package commands

import (
	"github.com/spf13/cobra"

	"ctenc/internal/encoding"
)

// decode: read encoded text and print the raw bytes.
func decodeCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode text from stdin or --in to raw bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			defer text.Destroy()

			out, err := encoding.Decode(wire.Encoding, trimText(text.Bytes()))
			if err != nil {
				return err
			}
			defer out.Destroy()
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	return cmd
}
