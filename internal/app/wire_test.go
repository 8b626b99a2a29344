package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctenc/internal/app"
	"ctenc/internal/domain"
	"ctenc/internal/encoding"
)

func TestNewWire(t *testing.T) {
	w, err := app.NewWire(app.Config{
		Home:            filepath.Join(t.TempDir(), "home"),
		Encoding:        "bech32m:age",
		KDF:             "argon2id",
		Bech32MaxLength: 200,
	})
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, encoding.Bech32{Prefix: "age", Variant: encoding.VariantBech32m, MaxLength: 200}, w.Encoding)

	_, err = w.Keys.Generate("k", domain.AlgorithmEd25519, "")
	require.NoError(t, err)
	names, err := w.Store.List()
	require.NoError(t, err)
	assert.Equal(t, []domain.KeyName{"k"}, names)
}

func TestNewWire_Errors(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")

	_, err := app.NewWire(app.Config{Home: home, Encoding: "base32"})
	require.ErrorIs(t, err, encoding.ErrUnknownEncoding)

	_, err = app.NewWire(app.Config{Home: home, KDF: "pbkdf2"})
	require.Error(t, err)
}

func TestParseEncoding_DefaultsToHex(t *testing.T) {
	w, err := app.NewWire(app.Config{Home: filepath.Join(t.TempDir(), "h")})
	require.NoError(t, err)
	defer w.Close()

	enc, err := w.ParseEncoding("")
	require.NoError(t, err)
	assert.Equal(t, encoding.HexLower, enc)
	assert.Equal(t, encoding.HexLower, w.Encoding)
}
