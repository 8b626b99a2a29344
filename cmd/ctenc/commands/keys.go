package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ctenc/internal/domain"
)

func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage stored private keys",
	}
	cmd.AddCommand(
		keysGenerateCmd(),
		keysImportCmd(),
		keysExportCmd(),
		keysPubkeyCmd(),
		keysFingerprintCmd(),
		keysInfoCmd(),
		keysListCmd(),
		keysDeleteCmd(),
	)
	return cmd
}

// keyName parses the single positional argument of a keys subcommand.
func keyName(args []string) (domain.KeyName, error) {
	return domain.ParseKeyName(args[0])
}

func keysGenerateCmd() *cobra.Command {
	var alg string
	cmd := &cobra.Command{
		Use:   "generate <name>",
		Short: "Generate a new key (sealed when -p is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := keyName(args)
			if err != nil {
				return err
			}
			a, err := domain.ParseAlgorithm(alg)
			if err != nil {
				return err
			}
			fp, err := wire.Keys.Generate(name, a, passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key %s created.\nFingerprint: %s\n", name, fp)
			return nil
		},
	}
	cmd.Flags().StringVar(&alg, "alg", string(domain.AlgorithmEd25519), "key algorithm (ed25519, x25519)")
	return cmd
}

func keysImportCmd() *cobra.Command {
	var (
		alg string
		in  string
	)
	cmd := &cobra.Command{
		Use:   "import <name>",
		Short: "Import a raw seed or PKCS#8 document from encoded text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := keyName(args)
			if err != nil {
				return err
			}
			var a domain.Algorithm
			if alg != "" {
				if a, err = domain.ParseAlgorithm(alg); err != nil {
					return err
				}
			}
			text, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			defer text.Destroy()

			fp, err := wire.Keys.Import(name, a, trimText(text.Bytes()), wire.Encoding, passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key %s imported.\nFingerprint: %s\n", name, fp)
			return nil
		},
	}
	cmd.Flags().StringVar(&alg, "alg", "", "algorithm of a raw seed (ed25519, x25519)")
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	return cmd
}

func keysExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name>",
		Short: "Print the key's seed in the selected encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := keyName(args)
			if err != nil {
				return err
			}
			text, err := wire.Keys.Export(name, passphrase, wire.Encoding)
			if err != nil {
				return err
			}
			defer text.Destroy()
			return writeLine(cmd, text.Bytes())
		},
	}
}

func keysPubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <name>",
		Short: "Print the key's public key in the selected encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := keyName(args)
			if err != nil {
				return err
			}
			pub, err := wire.Keys.PublicKey(name, passphrase, wire.Encoding)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pub)
			return nil
		},
	}
}

func keysFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <name>",
		Short: "Print the key's fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := keyName(args)
			if err != nil {
				return err
			}
			fp, err := wire.Keys.Fingerprint(name, passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}

func keysInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Describe a key without unsealing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := keyName(args)
			if err != nil {
				return err
			}
			info, err := wire.Keys.Info(name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:      %s\n", info.Name)
			fmt.Fprintf(out, "Algorithm: %s\n", algorithmLabel(info))
			fmt.Fprintf(out, "Sealed:    %t\n", info.Sealed)
			return nil
		},
	}
}

func keysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := wire.Keys.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tALGORITHM\tSEALED")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%t\n", info.Name, algorithmLabel(info), info.Sealed)
			}
			return tw.Flush()
		},
	}
}

func keysDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := keyName(args)
			if err != nil {
				return err
			}
			if err := wire.Keys.Delete(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key %s deleted.\n", name)
			return nil
		},
	}
}

// algorithmLabel shows "?" for sealed keys, whose algorithm is unknown until
// unsealed.
func algorithmLabel(info domain.KeyInfo) string {
	if info.Algorithm == "" {
		return "?"
	}
	return string(info.Algorithm)
}
