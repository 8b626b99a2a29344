package commands

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ctenc/internal/secret"
)

// readInput reads path, or stdin when path is empty or "-", into a secret
// buffer.
func readInput(cmd *cobra.Command, path string) (*secret.Buffer, error) {
	var (
		b   []byte
		err error
	)
	if path == "" || path == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return secret.Take(b), nil
}

// trimText strips surrounding whitespace from encoded text read from a
// terminal or file.
func trimText(b []byte) []byte {
	return bytes.TrimSpace(b)
}

// writeLine writes b and a newline to the command's output.
func writeLine(cmd *cobra.Command, b []byte) error {
	w := cmd.OutOrStdout()
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
