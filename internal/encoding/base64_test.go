package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctenc/internal/encoding"
)

func TestBase64_RFC4648Vectors(t *testing.T) {
	vectors := []struct{ in, padded, raw string }{
		{"", "", ""},
		{"f", "Zg==", "Zg"},
		{"fo", "Zm8=", "Zm8"},
		{"foo", "Zm9v", "Zm9v"},
		{"foob", "Zm9vYg==", "Zm9vYg"},
		{"fooba", "Zm9vYmE=", "Zm9vYmE"},
		{"foobar", "Zm9vYmFy", "Zm9vYmFy"},
	}
	for _, v := range vectors {
		got, err := encoding.EncodeToString(encoding.Base64Std, []byte(v.in))
		require.NoError(t, err)
		assert.Equal(t, v.padded, got)

		got, err = encoding.EncodeToString(encoding.Base64RawStd, []byte(v.in))
		require.NoError(t, err)
		assert.Equal(t, v.raw, got)

		buf, err := encoding.DecodeString(encoding.Base64Std, v.padded)
		require.NoError(t, err, v.padded)
		assert.Equal(t, v.in, string(buf.Bytes()))
		buf.Destroy()

		buf, err = encoding.DecodeString(encoding.Base64RawStd, v.raw)
		require.NoError(t, err, v.raw)
		assert.Equal(t, v.in, string(buf.Bytes()))
		buf.Destroy()
	}
}

func TestBase64_Zeros(t *testing.T) {
	got, err := encoding.EncodeToString(encoding.Base64Std, []byte{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "AAAA", got)
}

func TestBase64_Alphabets(t *testing.T) {
	in := []byte{0xfb, 0xff}
	cases := map[encoding.Base64]string{
		encoding.Base64Std:    "+/8=",
		encoding.Base64URL:    "-_8=",
		encoding.Base64RawStd: "+/8",
		encoding.Base64RawURL: "-_8",
	}
	for enc, want := range cases {
		got, err := encoding.EncodeToString(enc, in)
		require.NoError(t, err)
		assert.Equal(t, want, got, enc.Name())

		buf, err := encoding.DecodeString(enc, want)
		require.NoError(t, err, enc.Name())
		assert.Equal(t, in, buf.Bytes())
		buf.Destroy()
	}

	_, err := encoding.DecodeString(encoding.Base64Std, "-_8=")
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)
	_, err = encoding.DecodeString(encoding.Base64URL, "+/8=")
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)
}

func TestBase64_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		enc  encoding.Base64
		text string
		want error
	}{
		{"padded wrong length", encoding.Base64Std, "Zm9", encoding.ErrInvalidLength},
		{"padded missing padding", encoding.Base64Std, "Zg", encoding.ErrInvalidLength},
		{"three pads", encoding.Base64Std, "Z===", encoding.ErrInvalidPadding},
		{"all pads", encoding.Base64Std, "====", encoding.ErrInvalidPadding},
		{"pad in middle", encoding.Base64Std, "Zg==Zg==", encoding.ErrInvalidEncoding},
		{"raw dangling symbol", encoding.Base64RawStd, "Zm9vY", encoding.ErrInvalidLength},
		{"raw with padding", encoding.Base64RawStd, "Zg==", encoding.ErrInvalidEncoding},
		{"bad symbol", encoding.Base64Std, "Zm9*", encoding.ErrInvalidEncoding},
		{"whitespace", encoding.Base64Std, "Zm9v\nYmFy", encoding.ErrInvalidLength},
		{"non-canonical one byte", encoding.Base64Std, "Zh==", encoding.ErrInvalidPadding},
		{"non-canonical two bytes", encoding.Base64Std, "Zm9=", encoding.ErrInvalidPadding},
		{"non-canonical raw", encoding.Base64RawURL, "Zh", encoding.ErrInvalidPadding},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := encoding.DecodeString(tc.enc, tc.text)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBase64_DecodeToSliceWipesOnError(t *testing.T) {
	dst := []byte{7, 7, 7, 7, 7, 7}
	_, err := encoding.Base64Std.DecodeToSlice(dst, []byte("Zm9vYm?="))
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)
	assert.Equal(t, make([]byte, 6), dst)
}

func TestBase64_DecodedLen(t *testing.T) {
	for text, want := range map[string]int{"": 0, "Zg==": 1, "Zm8=": 2, "Zm9v": 3, "Zm9vYg==": 4} {
		n, err := encoding.Base64Std.DecodedLen([]byte(text))
		require.NoError(t, err)
		assert.Equal(t, want, n, text)
	}
}
