package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"ctenc/internal/domain"
	"ctenc/internal/encoding"
	"ctenc/internal/secret"
	"ctenc/internal/util/memzero"
)

// SeedSize is the private key size of both supported algorithms.
const SeedSize = 32

// fingerprintBytes is how much of the SHA-256 digest a fingerprint keeps.
const fingerprintBytes = 10

// Generate returns a fresh private key seed for alg.
// X25519 seeds are clamped per RFC 7748.
func Generate(alg domain.Algorithm) (*secret.Buffer, error) {
	if _, err := oidFor(alg); err != nil {
		return nil, err
	}
	seed := secret.New(SeedSize)
	if _, err := rand.Read(seed.Bytes()); err != nil {
		seed.Destroy()
		return nil, err
	}
	if alg == domain.AlgorithmX25519 {
		clamp(seed.Bytes())
	}
	return seed, nil
}

// PublicKey derives the public key for a seed.
func PublicKey(alg domain.Algorithm, seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes, want %d", ErrKeyMalformed, len(seed), SeedSize)
	}
	switch alg {
	case domain.AlgorithmEd25519:
		priv := ed25519.NewKeyFromSeed(seed)
		defer memzero.Zero(priv)
		pub := make([]byte, ed25519.PublicKeySize)
		copy(pub, priv[ed25519.SeedSize:])
		return pub, nil
	case domain.AlgorithmX25519:
		return curve25519.X25519(seed, curve25519.Basepoint)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
}

// Fingerprint returns the hex form of the first 10 bytes of SHA-256(pub).
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	fp, _ := encoding.EncodeToString(encoding.HexLower, sum[:fingerprintBytes])
	return domain.Fingerprint(fp)
}

func clamp(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
