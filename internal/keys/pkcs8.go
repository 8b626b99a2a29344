package keys

import (
	encoding_asn1 "encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"ctenc/internal/domain"
	"ctenc/internal/secret"
)

var (
	oidEd25519 = encoding_asn1.ObjectIdentifier{1, 3, 101, 112}
	oidX25519  = encoding_asn1.ObjectIdentifier{1, 3, 101, 110}
)

// pkcs8Len is the size of a v1 document for either algorithm:
// SEQUENCE { INTEGER 0, SEQUENCE { OID }, OCTET STRING { OCTET STRING seed } }.
const pkcs8Len = 2 + 3 + 7 + 2 + 2 + SeedSize

var (
	// ErrKeyMalformed is returned for documents that are not PKCS#8 keys.
	ErrKeyMalformed = errors.New("keys: malformed PKCS#8 document")
	// ErrUnsupportedAlgorithm is returned for algorithms other than Ed25519 and X25519.
	ErrUnsupportedAlgorithm = errors.New("keys: unsupported algorithm")
)

func oidFor(alg domain.Algorithm) (encoding_asn1.ObjectIdentifier, error) {
	switch alg {
	case domain.AlgorithmEd25519:
		return oidEd25519, nil
	case domain.AlgorithmX25519:
		return oidX25519, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
}

func algorithmFor(oid encoding_asn1.ObjectIdentifier) (domain.Algorithm, error) {
	switch {
	case oid.Equal(oidEd25519):
		return domain.AlgorithmEd25519, nil
	case oid.Equal(oidX25519):
		return domain.AlgorithmX25519, nil
	}
	return "", fmt.Errorf("%w: OID %s", ErrUnsupportedAlgorithm, oid)
}

// MarshalPKCS8 wraps a 32-byte seed in a PKCS#8 v1 document.
func MarshalPKCS8(alg domain.Algorithm, seed []byte) (*secret.Buffer, error) {
	oid, err := oidFor(alg)
	if err != nil {
		return nil, err
	}
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes, want %d", ErrKeyMalformed, len(seed), SeedSize)
	}

	out := secret.New(pkcs8Len)
	b := cryptobyte.NewFixedBuilder(out.Bytes()[:0])
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid)
		})
		b.AddASN1(asn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1OctetString(seed)
		})
	})
	der, err := b.Bytes()
	if err != nil {
		out.Destroy()
		return nil, fmt.Errorf("keys: build PKCS#8: %w", err)
	}
	out.Truncate(len(der))
	return out, nil
}

// readHeader reads the version and algorithm of a PrivateKeyInfo and returns
// the remaining fields.
func readHeader(der []byte) (domain.Algorithm, cryptobyte.String, error) {
	input := cryptobyte.String(der)
	var (
		info    cryptobyte.String
		algID   cryptobyte.String
		version int64
		oid     encoding_asn1.ObjectIdentifier
	)
	if !input.ReadASN1(&info, asn1.SEQUENCE) || !input.Empty() ||
		!info.ReadASN1Integer(&version) ||
		!info.ReadASN1(&algID, asn1.SEQUENCE) ||
		!algID.ReadASN1ObjectIdentifier(&oid) {
		return "", nil, ErrKeyMalformed
	}
	if version != 0 && version != 1 {
		return "", nil, fmt.Errorf("%w: version %d", ErrKeyMalformed, version)
	}
	alg, err := algorithmFor(oid)
	if err != nil {
		return "", nil, err
	}
	if !algID.Empty() {
		return "", nil, fmt.Errorf("%w: unexpected algorithm parameters", ErrKeyMalformed)
	}
	return alg, info, nil
}

// AlgorithmOf reports the algorithm of a PKCS#8 document without extracting
// the key.
func AlgorithmOf(der []byte) (domain.Algorithm, error) {
	alg, _, err := readHeader(der)
	return alg, err
}

// ParsePKCS8 returns the algorithm and seed held by a PKCS#8 document.
// Trailing attributes and public key fields are ignored.
func ParsePKCS8(der []byte) (domain.Algorithm, *secret.Buffer, error) {
	alg, info, err := readHeader(der)
	if err != nil {
		return "", nil, err
	}
	var outer, seed cryptobyte.String
	if !info.ReadASN1(&outer, asn1.OCTET_STRING) ||
		!outer.ReadASN1(&seed, asn1.OCTET_STRING) || !outer.Empty() {
		return "", nil, ErrKeyMalformed
	}
	if len(seed) != SeedSize {
		return "", nil, fmt.Errorf("%w: seed is %d bytes, want %d", ErrKeyMalformed, len(seed), SeedSize)
	}
	out := secret.New(SeedSize)
	copy(out.Bytes(), seed)
	return alg, out, nil
}
