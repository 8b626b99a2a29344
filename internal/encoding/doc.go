// Package encoding converts secret byte buffers to and from hex, base64 and
// bech32 text without secret-dependent branches or table lookups.
//
// # Constant time
//
// Symbol translation never indexes an array with a value derived from the
// data. Hex and base64 symbols are computed with range masks: for a byte c,
//
//	((lo-1-c) & (c-hi-1)) >> 8
//
// is -1 when lo <= c <= hi and 0 otherwise, so each range contributes its
// offset through an AND instead of an if. The bech32 alphabet is not
// contiguous, so its symbols are selected by scanning all 32 entries and
// keeping the one whose equality mask is set. Invalid symbols decode to -1 and
// are OR-ed into an error accumulator that is checked once per call.
//
// Structural properties (length, separator position, padding count, case of a
// bech32 string) are treated as public and may be branched on. Failing inputs
// are not secret either; only the translation of valid symbols is uniform.
//
// # Variants
//
// Variants are plain values chosen at construction time:
//
//	HexLower, HexUpper
//	Base64Std, Base64URL, Base64RawStd, Base64RawURL
//	NewBech32(prefix), NewBech32m(prefix)
//
// Parse builds one from its configuration name (see Parse).
//
// # Output
//
// Decode returns a *secret.Buffer, which the caller must Destroy. The
// allocation-free EncodeToSlice and DecodeToSlice write into caller storage;
// DecodeToSlice zeroes dst when it fails.
//
// # Errors
//
// Failures are *Error values carrying a Kind. Test for a kind with errors.Is
// against ErrInvalidEncoding, ErrInvalidLength, ErrInvalidChecksum,
// ErrMixedCase or ErrInvalidPadding.
package encoding
