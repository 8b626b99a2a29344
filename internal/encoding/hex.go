package encoding

import "ctenc/internal/util/memzero"

// Hex encodes each byte as two hexadecimal digits, high nibble first.
type Hex struct {
	// Upper selects A-F instead of a-f when encoding. Decoding accepts both.
	Upper bool
}

var (
	HexLower = Hex{}
	HexUpper = Hex{Upper: true}
)

// Name returns the configuration name of the variant.
func (h Hex) Name() string {
	if h.Upper {
		return "hex-upper"
	}
	return "hex"
}

// EncodedLen returns the length of the encoding of n bytes.
func (Hex) EncodedLen(n int) int { return n * 2 }

// EncodeToSlice writes the encoding of src into dst and returns the number of
// bytes written.
func (h Hex) EncodeToSlice(dst, src []byte) (int, error) {
	n := h.EncodedLen(len(src))
	if len(dst) < n {
		return 0, newError(KindInvalidLength, h.Name(), "destination too short")
	}
	shift := hexLowerShift
	if h.Upper {
		shift = hexUpperShift
	}
	for i, b := range src {
		dst[2*i] = encodeNibble(int(b>>4), shift)
		dst[2*i+1] = encodeNibble(int(b&0x0f), shift)
	}
	return n, nil
}

// DecodedLen returns the number of bytes src decodes to.
func (h Hex) DecodedLen(src []byte) (int, error) {
	if len(src)%2 != 0 {
		return 0, newError(KindInvalidLength, h.Name(), "odd length")
	}
	return len(src) / 2, nil
}

// DecodeToSlice decodes src into dst and returns the number of bytes written.
// dst is zeroed on failure.
func (h Hex) DecodeToSlice(dst, src []byte) (int, error) {
	n, err := h.DecodedLen(src)
	if err != nil {
		memzero.Zero(dst)
		return 0, err
	}
	if len(dst) < n {
		memzero.Zero(dst)
		return 0, newError(KindInvalidLength, h.Name(), "destination too short")
	}
	var bad int
	for i := 0; i < n; i++ {
		hi := decodeNibble(src[2*i])
		lo := decodeNibble(src[2*i+1])
		bad |= hi | lo
		dst[i] = byte(hi<<4 | lo)
	}
	if bad < 0 {
		memzero.Zero(dst)
		return 0, newError(KindInvalidEncoding, h.Name(), "character outside [0-9a-fA-F]")
	}
	return n, nil
}
