// Package keystore provides a filesystem-backed store for private key
// documents.
//
// Each key lives in <dir>/<name>.pem. Plain keys are PKCS#8 documents under
// the "PRIVATE KEY" label; sealed keys carry a JSON envelope under the
// "SEALED PRIVATE KEY" label, encrypted with ChaCha20-Poly1305 under a key
// derived from a passphrase with scrypt (default) or Argon2id.
//
// The directory must have mode 0700 on unix systems; Open refuses anything
// else. Files are written atomically with mode 0600. All methods are safe for
// concurrent use.
package keystore
