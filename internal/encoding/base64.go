package encoding

import "ctenc/internal/util/memzero"

const base64Pad = '='

// Base64 implements RFC 4648 base64 in its standard and URL-safe alphabets,
// with or without '=' padding.
//
// Decoding is strict: a final partial group whose unused bits are not zero is
// rejected with KindInvalidPadding, so every accepted text is the canonical
// encoding of its bytes.
type Base64 struct {
	URL    bool
	Padded bool
}

var (
	Base64Std    = Base64{Padded: true}
	Base64URL    = Base64{URL: true, Padded: true}
	Base64RawStd = Base64{}
	Base64RawURL = Base64{URL: true}
)

// Name returns the configuration name of the variant.
func (e Base64) Name() string {
	name := "base64"
	if e.URL {
		name += "url"
	}
	if !e.Padded {
		name += "-raw"
	}
	return name
}

func (e Base64) alphabet() base64Alphabet {
	if e.URL {
		return base64URLAlphabet
	}
	return base64StdAlphabet
}

// EncodedLen returns the length of the encoding of n bytes.
func (e Base64) EncodedLen(n int) int {
	if e.Padded {
		return (n + 2) / 3 * 4
	}
	return (n*8 + 5) / 6
}

// EncodeToSlice writes the encoding of src into dst and returns the number of
// bytes written.
func (e Base64) EncodeToSlice(dst, src []byte) (int, error) {
	n := e.EncodedLen(len(src))
	if len(dst) < n {
		return 0, newError(KindInvalidLength, e.Name(), "destination too short")
	}
	a := e.alphabet()

	di, si := 0, 0
	for ; si+3 <= len(src); si += 3 {
		v := int(src[si])<<16 | int(src[si+1])<<8 | int(src[si+2])
		dst[di] = a.encode(v >> 18 & 0x3f)
		dst[di+1] = a.encode(v >> 12 & 0x3f)
		dst[di+2] = a.encode(v >> 6 & 0x3f)
		dst[di+3] = a.encode(v & 0x3f)
		di += 4
	}

	switch len(src) - si {
	case 1:
		v := int(src[si]) << 16
		dst[di] = a.encode(v >> 18 & 0x3f)
		dst[di+1] = a.encode(v >> 12 & 0x3f)
		di += 2
		if e.Padded {
			dst[di], dst[di+1] = base64Pad, base64Pad
			di += 2
		}
	case 2:
		v := int(src[si])<<16 | int(src[si+1])<<8
		dst[di] = a.encode(v >> 18 & 0x3f)
		dst[di+1] = a.encode(v >> 12 & 0x3f)
		dst[di+2] = a.encode(v >> 6 & 0x3f)
		di += 3
		if e.Padded {
			dst[di] = base64Pad
			di++
		}
	}
	return di, nil
}

// dataLen validates the length and padding layout of src and returns the
// number of symbols before any padding.
func (e Base64) dataLen(src []byte) (int, error) {
	n := len(src)
	if e.Padded {
		if n%4 != 0 {
			return 0, newError(KindInvalidLength, e.Name(), "length not a multiple of 4")
		}
		for pads := 0; pads < 2 && n > 0 && src[n-1] == base64Pad; pads++ {
			n--
		}
		if n > 0 && src[n-1] == base64Pad {
			return 0, newError(KindInvalidPadding, e.Name(), "more than two padding characters")
		}
	}
	if n%4 == 1 {
		return 0, newError(KindInvalidLength, e.Name(), "dangling symbol")
	}
	return n, nil
}

// DecodedLen returns the number of bytes src decodes to.
func (e Base64) DecodedLen(src []byte) (int, error) {
	n, err := e.dataLen(src)
	if err != nil {
		return 0, err
	}
	return n * 6 / 8, nil
}

// DecodeToSlice decodes src into dst and returns the number of bytes written.
// dst is zeroed on failure.
func (e Base64) DecodeToSlice(dst, src []byte) (int, error) {
	n, err := e.dataLen(src)
	if err != nil {
		memzero.Zero(dst)
		return 0, err
	}
	out := n * 6 / 8
	if len(dst) < out {
		memzero.Zero(dst)
		return 0, newError(KindInvalidLength, e.Name(), "destination too short")
	}
	a := e.alphabet()

	var bad, tail int
	di, si := 0, 0
	for ; si+4 <= n; si += 4 {
		s0 := a.decode(src[si])
		s1 := a.decode(src[si+1])
		s2 := a.decode(src[si+2])
		s3 := a.decode(src[si+3])
		bad |= s0 | s1 | s2 | s3
		dst[di] = byte(s0<<2 | s1>>4)
		dst[di+1] = byte(s1<<4 | s2>>2)
		dst[di+2] = byte(s2<<6 | s3)
		di += 3
	}

	switch n - si {
	case 2:
		s0 := a.decode(src[si])
		s1 := a.decode(src[si+1])
		bad |= s0 | s1
		dst[di] = byte(s0<<2 | s1>>4)
		tail = s1 & 0x0f
		di++
	case 3:
		s0 := a.decode(src[si])
		s1 := a.decode(src[si+1])
		s2 := a.decode(src[si+2])
		bad |= s0 | s1 | s2
		dst[di] = byte(s0<<2 | s1>>4)
		dst[di+1] = byte(s1<<4 | s2>>2)
		tail = s2 & 0x03
		di += 2
	}

	if bad < 0 {
		memzero.Zero(dst)
		return 0, newError(KindInvalidEncoding, e.Name(), "character outside alphabet")
	}
	if tail != 0 {
		memzero.Zero(dst)
		return 0, newError(KindInvalidPadding, e.Name(), "non-zero trailing bits")
	}
	return di, nil
}
