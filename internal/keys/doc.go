// Package keys handles private key material for the key store: generation,
// public key derivation, fingerprints and PKCS#8 documents.
//
// Contents
//
//   - Ed25519 and X25519 seeds (Generate, PublicKey)
//   - RFC 8410 PKCS#8 v1 documents (MarshalPKCS8, ParsePKCS8, AlgorithmOf)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// Documents are built with a fixed-size cryptobyte.Builder over a secret
// buffer, so the encoder never reallocates and leaves copies of the seed
// behind. Parsed seeds are returned as secret buffers.
package keys
