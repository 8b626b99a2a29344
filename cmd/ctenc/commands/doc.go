// Package commands defines the ctenc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encode              Encode stdin (or --in) with the selected encoding
//   - decode              Decode stdin (or --in) to raw bytes
//   - keys generate       Create a new Ed25519 or X25519 key
//   - keys import         Import a seed or PKCS#8 document from encoded text
//   - keys export         Print a key's seed in the selected encoding
//   - keys pubkey         Print a key's public key in the selected encoding
//   - keys fingerprint    Print a key's fingerprint
//   - keys info           Describe a key without unsealing it
//   - keys list           Describe all stored keys
//   - keys delete         Remove a key
//
// # Implementation
//
// The root command builds the dependency graph (logger, key store, keyring
// service) from the persistent flags before any subcommand runs, so handlers
// share one app.Wire.
package commands
