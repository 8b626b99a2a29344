package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctenc/internal/encoding"
)

func TestHex_Encode(t *testing.T) {
	tests := []struct {
		name string
		enc  encoding.Hex
		in   []byte
		want string
	}{
		{"empty", encoding.HexLower, nil, ""},
		{"lower", encoding.HexLower, []byte{0x00, 0xff, 0x10}, "00ff10"},
		{"upper", encoding.HexUpper, []byte{0x00, 0xff, 0x10}, "00FF10"},
		{"all digits", encoding.HexLower, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, "0123456789abcdef"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := encoding.EncodeToString(tc.enc, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHex_Decode(t *testing.T) {
	for _, text := range []string{"00ff10", "00FF10", "00Ff10"} {
		buf, err := encoding.DecodeString(encoding.HexLower, text)
		require.NoError(t, err, text)
		assert.Equal(t, []byte{0x00, 0xff, 0x10}, buf.Bytes())
		buf.Destroy()
	}
}

func TestHex_DecodeErrors(t *testing.T) {
	tests := []struct {
		text string
		want error
	}{
		{"abc", encoding.ErrInvalidLength},
		{"0g", encoding.ErrInvalidEncoding},
		{"g0", encoding.ErrInvalidEncoding},
		{"00 1", encoding.ErrInvalidEncoding},
		{"zz", encoding.ErrInvalidEncoding},
	}
	for _, tc := range tests {
		_, err := encoding.DecodeString(encoding.HexLower, tc.text)
		require.ErrorIs(t, err, tc.want, tc.text)
	}
}

func TestHex_DecodeToSliceWipesOnError(t *testing.T) {
	dst := []byte{1, 2, 3}
	_, err := encoding.HexLower.DecodeToSlice(dst, []byte("aabbxx"))
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)
	assert.Equal(t, []byte{0, 0, 0}, dst)
}

func TestHex_ShortDestination(t *testing.T) {
	_, err := encoding.HexLower.EncodeToSlice(make([]byte, 3), []byte{1, 2})
	require.ErrorIs(t, err, encoding.ErrInvalidLength)

	_, err = encoding.HexLower.DecodeToSlice(make([]byte, 1), []byte("0102"))
	require.ErrorIs(t, err, encoding.ErrInvalidLength)
}
