package commands

import (
	"github.com/spf13/cobra"

	"ctenc/internal/encoding"
)

// encode: read raw bytes and print their encoding.
func encodeCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode raw bytes from stdin or --in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			defer src.Destroy()

			text, err := encoding.EncodeToBuffer(wire.Encoding, src.Bytes())
			if err != nil {
				return err
			}
			defer text.Destroy()
			return writeLine(cmd, text.Bytes())
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	return cmd
}
