// Package keyring manages named private keys on top of a domain.KeyStore.
//
// It enforces the passphrase policy for sealed keys, generates and imports
// Ed25519 and X25519 seeds, and exports seeds and public keys in any
// encoding.Encoding. Seeds only ever live in secret buffers.
package keyring
