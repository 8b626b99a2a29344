package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ctenc/internal/app"
	"ctenc/internal/encoding"
)

var (
	cfg        app.Config
	passphrase string
	wire       *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg = app.Config{}
	passphrase = ""

	root := &cobra.Command{
		Use:          "ctenc",
		Short:        "Constant-time encodings for secret key material",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".ctenc")
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return wire.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Home, "home", "", "key store dir (default ~/.ctenc)")
	flags.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting sealed keys")
	flags.StringVarP(&cfg.Encoding, "encoding", "e", "hex",
		"text encoding: "+strings.Join(encoding.Names(), ", "))
	flags.StringVar(&cfg.KDF, "kdf", "scrypt", "KDF for newly sealed keys (scrypt, argon2id)")
	flags.IntVar(&cfg.Bech32MaxLength, "bech32-max-length", 0, "maximum bech32 string length (default 90)")
	flags.BoolVar(&cfg.Verbose, "verbose", false, "log debug output to stderr")

	root.AddCommand(encodeCmd(), decodeCmd(), keysCmd())
	return root
}
