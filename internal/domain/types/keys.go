package types

import (
	"errors"
	"fmt"
)

const maxKeyNameLength = 64

var (
	// ErrInvalidKeyName is returned for names that cannot be used as file names.
	ErrInvalidKeyName = errors.New("invalid key name")
	// ErrKeyNotFound is returned by key stores for names they do not hold.
	ErrKeyNotFound = errors.New("key not found")
)

// KeyName identifies a key in a key store. It doubles as the file stem.
type KeyName string

// ParseKeyName validates s: 1 to 64 characters from [A-Za-z0-9._-], not
// starting with a dot.
func ParseKeyName(s string) (KeyName, error) {
	if s == "" || len(s) > maxKeyNameLength {
		return "", fmt.Errorf("%w: length must be 1..%d", ErrInvalidKeyName, maxKeyNameLength)
	}
	if s[0] == '.' {
		return "", fmt.Errorf("%w: %q starts with a dot", ErrInvalidKeyName, s)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidKeyName, s, r)
		}
	}
	return KeyName(s), nil
}

// Algorithm names a supported private key type.
type Algorithm string

const (
	AlgorithmEd25519 Algorithm = "ed25519"
	AlgorithmX25519  Algorithm = "x25519"
)

// ParseAlgorithm returns the Algorithm named s.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case AlgorithmEd25519, AlgorithmX25519:
		return a, nil
	}
	return "", fmt.Errorf("unsupported algorithm %q", s)
}

// Fingerprint is a short public-key digest for display.
type Fingerprint string

// KeyInfo describes a stored key without loading it.
type KeyInfo struct {
	Name KeyName `json:"name"`
	// Algorithm is empty for sealed keys, whose document cannot be read
	// without the passphrase.
	Algorithm Algorithm `json:"algorithm,omitempty"`
	Sealed    bool      `json:"sealed"`
}
