package keys_test

import (
	"crypto/ecdh"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctenc/internal/domain"
	"ctenc/internal/keys"
)

// RFC 8410 section 10.3 example private key.
const rfc8410Ed25519 = "302e020100300506032b657004220420" +
	"d4ee72dbf913584ad5b6d8f1f769f8ad3afe7c28cbf1d4fbe097a88f44755842"

func TestParsePKCS8_RFC8410Example(t *testing.T) {
	der, err := hex.DecodeString(rfc8410Ed25519)
	require.NoError(t, err)

	alg, seed, err := keys.ParsePKCS8(der)
	require.NoError(t, err)
	defer seed.Destroy()
	assert.Equal(t, domain.AlgorithmEd25519, alg)
	assert.Equal(t, der[16:], seed.Bytes())

	again, err := keys.MarshalPKCS8(alg, seed.Bytes())
	require.NoError(t, err)
	defer again.Destroy()
	assert.Equal(t, der, again.Bytes())
}

func TestMarshalPKCS8_ReadableByStandardLibrary(t *testing.T) {
	for _, alg := range []domain.Algorithm{domain.AlgorithmEd25519, domain.AlgorithmX25519} {
		seed, err := keys.Generate(alg)
		require.NoError(t, err)

		der, err := keys.MarshalPKCS8(alg, seed.Bytes())
		require.NoError(t, err)

		parsed, err := x509.ParsePKCS8PrivateKey(der.Bytes())
		require.NoError(t, err, alg)

		pub, err := keys.PublicKey(alg, seed.Bytes())
		require.NoError(t, err)

		switch k := parsed.(type) {
		case ed25519.PrivateKey:
			assert.Equal(t, domain.AlgorithmEd25519, alg)
			assert.Equal(t, []byte(k.Public().(ed25519.PublicKey)), pub)
		case *ecdh.PrivateKey:
			assert.Equal(t, domain.AlgorithmX25519, alg)
			assert.Equal(t, k.PublicKey().Bytes(), pub)
		default:
			t.Fatalf("unexpected key type %T", parsed)
		}

		got, err := keys.AlgorithmOf(der.Bytes())
		require.NoError(t, err)
		assert.Equal(t, alg, got)

		seed.Destroy()
		der.Destroy()
	}
}

func TestParsePKCS8_StandardLibraryDocument(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	alg, seed, err := keys.ParsePKCS8(der)
	require.NoError(t, err)
	defer seed.Destroy()
	assert.Equal(t, domain.AlgorithmEd25519, alg)
	assert.Equal(t, []byte(priv.Seed()), seed.Bytes())
}

func TestParsePKCS8_Errors(t *testing.T) {
	der, err := hex.DecodeString(rfc8410Ed25519)
	require.NoError(t, err)

	_, _, err = keys.ParsePKCS8(der[:len(der)-1])
	require.ErrorIs(t, err, keys.ErrKeyMalformed)

	_, _, err = keys.ParsePKCS8(append(append([]byte{}, der...), 0))
	require.ErrorIs(t, err, keys.ErrKeyMalformed)

	other := append([]byte{}, der...)
	other[11] = 0x71 // 1.3.101.113 is Ed448
	_, _, err = keys.ParsePKCS8(other)
	require.ErrorIs(t, err, keys.ErrUnsupportedAlgorithm)

	_, err = keys.MarshalPKCS8(domain.AlgorithmEd25519, make([]byte, 31))
	require.ErrorIs(t, err, keys.ErrKeyMalformed)

	_, err = keys.MarshalPKCS8("rsa", make([]byte, 32))
	require.ErrorIs(t, err, keys.ErrUnsupportedAlgorithm)
}

func TestGenerate_ClampsX25519(t *testing.T) {
	seed, err := keys.Generate(domain.AlgorithmX25519)
	require.NoError(t, err)
	defer seed.Destroy()

	b := seed.Bytes()
	assert.Zero(t, b[0]&7)
	assert.Zero(t, b[31]&128)
	assert.Equal(t, byte(64), b[31]&64)
}

func TestFingerprint(t *testing.T) {
	fp := keys.Fingerprint([]byte("public"))
	assert.Len(t, string(fp), 20)
	assert.Equal(t, fp, keys.Fingerprint([]byte("public")))
	assert.NotEqual(t, fp, keys.Fingerprint([]byte("other")))
}
