package keystore

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"ctenc/internal/secret"
	"ctenc/internal/util/memzero"
)

const (
	// The current supported version of the sealed envelope format.
	envelopeVersion = 1
	saltBytes       = 16
)

// KDF names the passphrase key derivation function of a sealed envelope.
type KDF string

const (
	KDFScrypt   KDF = "scrypt"
	KDFArgon2id KDF = "argon2id"
)

// ParseKDF returns the KDF named s.
func ParseKDF(s string) (KDF, error) {
	switch k := KDF(s); k {
	case KDFScrypt, KDFArgon2id:
		return k, nil
	}
	return "", fmt.Errorf("keystore: unknown kdf %q", s)
}

// ScryptParams are the scrypt cost parameters.
type ScryptParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// Argon2Params are the Argon2id cost parameters. Memory is in KiB.
type Argon2Params struct {
	Time    uint32 `json:"t"`
	Memory  uint32 `json:"m"`
	Threads uint8  `json:"p"`
}

// Defaults for new envelopes.
var (
	DefaultScryptParams = ScryptParams{N: 1 << 15, R: 8, P: 1}
	DefaultArgon2Params = Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4}
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// envelope has been modified.
var ErrWrongPassphrase = errors.New("keystore: wrong passphrase or corrupted key")

// envelope is the JSON structure under the SEALED PRIVATE KEY label.
type envelope struct {
	V      int           `json:"v"`
	KDF    KDF           `json:"kdf"`
	Salt   []byte        `json:"salt"`
	Scrypt *ScryptParams `json:"scrypt,omitempty"`
	Argon2 *Argon2Params `json:"argon2,omitempty"`
	Cipher []byte        `json:"cipher"`
}

// sealer derives keys and seals documents with fixed parameters.
type sealer struct {
	kdf    KDF
	scrypt ScryptParams
	argon2 Argon2Params
}

func (e *envelope) deriveKey(passphrase string) ([]byte, error) {
	switch e.KDF {
	case KDFScrypt:
		if e.Scrypt == nil {
			return nil, fmt.Errorf("keystore: scrypt envelope without parameters")
		}
		return scrypt.Key([]byte(passphrase), e.Salt, e.Scrypt.N, e.Scrypt.R, e.Scrypt.P, chacha20poly1305.KeySize)
	case KDFArgon2id:
		if e.Argon2 == nil || e.Argon2.Time == 0 || e.Argon2.Threads == 0 {
			return nil, fmt.Errorf("keystore: argon2id envelope without parameters")
		}
		p := e.Argon2
		return argon2.IDKey([]byte(passphrase), e.Salt, p.Time, p.Memory, p.Threads, chacha20poly1305.KeySize), nil
	}
	return nil, fmt.Errorf("keystore: unknown kdf %q", e.KDF)
}

// seal derives a key from passphrase and encrypts der into a JSON envelope.
func (s sealer) seal(passphrase string, der []byte) ([]byte, error) {
	env := envelope{V: envelopeVersion, KDF: s.kdf, Salt: make([]byte, saltBytes)}
	if _, err := rand.Read(env.Salt); err != nil {
		return nil, err
	}
	switch s.kdf {
	case KDFScrypt:
		p := s.scrypt
		env.Scrypt = &p
	case KDFArgon2id:
		p := s.argon2
		env.Argon2 = &p
	}

	key, err := env.deriveKey(passphrase)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key is unique per envelope
	env.Cipher = aead.Seal(nil, nonce[:], der, env.Salt)
	return json.Marshal(env)
}

// open decrypts a JSON envelope with a key derived from passphrase.
func open(passphrase string, blob []byte) (*secret.Buffer, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, fmt.Errorf("keystore: envelope: %w", err)
	}
	if env.V > envelopeVersion {
		return nil, fmt.Errorf("keystore: unsupported envelope version %d", env.V)
	}

	key, err := env.deriveKey(passphrase)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return secret.Take(pt), nil
}
