package encoding

import (
	"fmt"
	"strings"

	"ctenc/internal/secret"
)

// Encoding is one configured variant of a codec.
type Encoding interface {
	// Name returns the configuration name accepted by Parse.
	Name() string
	// EncodedLen returns the encoded length of n input bytes.
	EncodedLen(n int) int
	// EncodeToSlice encodes src into dst and returns the bytes written.
	EncodeToSlice(dst, src []byte) (int, error)
	// DecodedLen returns the decoded length of src, validating its layout.
	DecodedLen(src []byte) (int, error)
	// DecodeToSlice decodes src into dst and returns the bytes written.
	// dst is zeroed on failure.
	DecodeToSlice(dst, src []byte) (int, error)
}

var (
	_ Encoding = Hex{}
	_ Encoding = Base64{}
	_ Encoding = Bech32{}
)

// Encode returns the encoding of src.
func Encode(enc Encoding, src []byte) ([]byte, error) {
	dst := make([]byte, enc.EncodedLen(len(src)))
	n, err := enc.EncodeToSlice(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// EncodeToString returns the encoding of src as a string.
//
// Strings cannot be wiped; use EncodeToBuffer when the text itself is secret.
func EncodeToString(enc Encoding, src []byte) (string, error) {
	out, err := Encode(enc, src)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeToBuffer returns the encoding of src in a secret buffer.
func EncodeToBuffer(enc Encoding, src []byte) (*secret.Buffer, error) {
	buf := secret.New(enc.EncodedLen(len(src)))
	n, err := enc.EncodeToSlice(buf.Bytes(), src)
	if err != nil {
		buf.Destroy()
		return nil, err
	}
	buf.Truncate(n)
	return buf, nil
}

// Decode decodes text into a new secret buffer.
func Decode(enc Encoding, text []byte) (*secret.Buffer, error) {
	n, err := enc.DecodedLen(text)
	if err != nil {
		return nil, err
	}
	buf := secret.New(n)
	m, err := enc.DecodeToSlice(buf.Bytes(), text)
	if err != nil {
		buf.Destroy()
		return nil, err
	}
	buf.Truncate(m)
	return buf, nil
}

// DecodeString decodes s into a new secret buffer.
func DecodeString(enc Encoding, s string) (*secret.Buffer, error) {
	return Decode(enc, []byte(s))
}

// Parse returns the variant named by name:
//
//	hex, hex-upper
//	base64, base64url, base64-raw, base64url-raw
//	bech32:<prefix>, bech32m:<prefix>
func Parse(name string) (Encoding, error) {
	switch name {
	case "hex":
		return HexLower, nil
	case "hex-upper":
		return HexUpper, nil
	case "base64":
		return Base64Std, nil
	case "base64url":
		return Base64URL, nil
	case "base64-raw":
		return Base64RawStd, nil
	case "base64url-raw":
		return Base64RawURL, nil
	}
	if prefix, ok := strings.CutPrefix(name, "bech32:"); ok && prefix != "" {
		return NewBech32(prefix), nil
	}
	if prefix, ok := strings.CutPrefix(name, "bech32m:"); ok && prefix != "" {
		return NewBech32m(prefix), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
}

// Names lists the fixed variant names understood by Parse.
func Names() []string {
	return []string{
		"hex", "hex-upper",
		"base64", "base64url", "base64-raw", "base64url-raw",
		"bech32:<prefix>", "bech32m:<prefix>",
	}
}
