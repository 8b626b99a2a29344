package encoding

import (
	"bytes"
	"fmt"

	"ctenc/internal/secret"
	"ctenc/internal/util/memzero"
)

const (
	bech32Separator   = '1'
	bech32ChecksumLen = 6
	bech32MinLength   = 1 + 1 + bech32ChecksumLen

	// DefaultBech32MaxLength is the BIP-173 limit on a whole bech32 string.
	DefaultBech32MaxLength = 90
)

// Bech32Variant selects the checksum constant.
type Bech32Variant int

const (
	VariantBech32  Bech32Variant = iota // BIP-173
	VariantBech32m                      // BIP-350
)

func (v Bech32Variant) constant() uint32 {
	if v == VariantBech32m {
		return 0x2bc830a3
	}
	return 1
}

func (v Bech32Variant) String() string {
	if v == VariantBech32m {
		return "bech32m"
	}
	return "bech32"
}

var bech32Generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// bech32Checksum is the BCH checksum state: six 5-bit coefficients packed in
// the low 30 bits.
type bech32Checksum uint32

func (c *bech32Checksum) update(v byte) {
	top := uint32(*c) >> 25
	chk := (uint32(*c)&0x1ffffff)<<5 ^ uint32(v)
	for i, g := range bech32Generator {
		chk ^= g & -(top >> i & 1)
	}
	*c = bech32Checksum(chk)
}

// newBech32Checksum returns the state after absorbing the expanded prefix.
func newBech32Checksum(prefix []byte) bech32Checksum {
	c := bech32Checksum(1)
	for _, ch := range prefix {
		c.update(ch >> 5)
	}
	c.update(0)
	for _, ch := range prefix {
		c.update(ch & 31)
	}
	return c
}

// Bech32 encodes bytes as a prefix, the separator '1', the payload regrouped
// into 5-bit symbols, and a six-symbol checksum.
type Bech32 struct {
	Prefix  string
	Variant Bech32Variant
	// MaxLength caps the whole string. Zero means DefaultBech32MaxLength.
	MaxLength int
}

// NewBech32 returns a BIP-173 encoding for prefix.
func NewBech32(prefix string) Bech32 { return Bech32{Prefix: prefix} }

// NewBech32m returns a BIP-350 encoding for prefix.
func NewBech32m(prefix string) Bech32 {
	return Bech32{Prefix: prefix, Variant: VariantBech32m}
}

// Name returns the configuration name of the variant.
func (e Bech32) Name() string { return e.Variant.String() + ":" + e.Prefix }

func (e Bech32) maxLength() int {
	if e.MaxLength > 0 {
		return e.MaxLength
	}
	return DefaultBech32MaxLength
}

func (e Bech32) errorf(kind Kind, format string, args ...any) *Error {
	return newError(kind, e.Variant.String(), fmt.Sprintf(format, args...))
}

// normalizePrefix validates a human-readable prefix and returns it lowercased.
func (e Bech32) normalizePrefix(prefix string) ([]byte, error) {
	if len(prefix) == 0 {
		return nil, e.errorf(KindInvalidLength, "empty prefix")
	}
	if err := e.checkCase([]byte(prefix)); err != nil {
		return nil, err
	}
	out := make([]byte, len(prefix))
	for i := 0; i < len(prefix); i++ {
		out[i] = toLowerASCII(prefix[i])
	}
	return out, nil
}

// checkCase rejects characters outside 33..126 and strings mixing cases.
func (e Bech32) checkCase(s []byte) error {
	var lower, upper int
	for _, c := range s {
		if c < 33 || c > 126 {
			return e.errorf(KindInvalidEncoding, "character %#x outside printable range", c)
		}
		lower |= rangeMask(int(c), 'a', 'z')
		upper |= rangeMask(int(c), 'A', 'Z')
	}
	if lower != 0 && upper != 0 {
		return e.errorf(KindMixedCase, "upper and lower case mixed")
	}
	return nil
}

// EncodedLen returns the length of the encoding of n bytes under e.Prefix.
func (e Bech32) EncodedLen(n int) int {
	return len(e.Prefix) + 1 + (n*8+4)/5 + bech32ChecksumLen
}

// EncodeToSlice writes the encoding of src into dst and returns the number of
// bytes written. The output is lowercase.
func (e Bech32) EncodeToSlice(dst, src []byte) (int, error) {
	groups := (len(src)*8 + 4) / 5
	return e.encode(dst, groups, func(out []byte) error {
		_, err := convertBits(out, src, 8, 5, true)
		return err
	})
}

// EncodeGroups encodes already regrouped 5-bit values.
func (e Bech32) EncodeGroups(groups []byte) (string, error) {
	var bad int
	for _, g := range groups {
		bad |= int(g >> 5)
	}
	if bad != 0 {
		return "", e.errorf(KindInvalidEncoding, "group value exceeds 5 bits")
	}
	dst := make([]byte, len(e.Prefix)+1+len(groups)+bech32ChecksumLen)
	n, err := e.encode(dst, len(groups), func(out []byte) error {
		copy(out, groups)
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(dst[:n]), nil
}

// encode lays out prefix, separator, fill's 5-bit groups and the checksum in
// dst, then maps every group to its symbol.
func (e Bech32) encode(dst []byte, groups int, fill func(out []byte) error) (int, error) {
	prefix, err := e.normalizePrefix(e.Prefix)
	if err != nil {
		return 0, err
	}
	n := len(prefix) + 1 + groups + bech32ChecksumLen
	if n > e.maxLength() {
		return 0, e.errorf(KindInvalidLength, "encoded length %d exceeds %d", n, e.maxLength())
	}
	if len(dst) < n {
		return 0, e.errorf(KindInvalidLength, "destination too short")
	}

	copy(dst, prefix)
	dst[len(prefix)] = bech32Separator
	data := dst[len(prefix)+1 : n]
	if err := fill(data[:groups]); err != nil {
		memzero.Zero(dst)
		return 0, err
	}

	chk := newBech32Checksum(prefix)
	for _, g := range data[:groups] {
		chk.update(g)
	}
	for i := 0; i < bech32ChecksumLen; i++ {
		chk.update(0)
	}
	mod := uint32(chk) ^ e.Variant.constant()
	for i := 0; i < bech32ChecksumLen; i++ {
		data[groups+i] = byte(mod >> (5 * (5 - i)) & 31)
	}

	for i, g := range data {
		data[i] = encodeBech32Symbol(int(g))
	}
	return n, nil
}

func (e Bech32) checkLength(text []byte) error {
	if len(text) > e.maxLength() {
		return e.errorf(KindInvalidLength, "length %d exceeds %d", len(text), e.maxLength())
	}
	if len(text) < bech32MinLength {
		return e.errorf(KindInvalidLength, "length %d below minimum %d", len(text), bech32MinLength)
	}
	return nil
}

// split validates the layout of text and returns the separator position.
func (e Bech32) split(text []byte) (int, error) {
	if err := e.checkLength(text); err != nil {
		return 0, err
	}
	pos := bytes.LastIndexByte(text, bech32Separator)
	switch {
	case pos < 0:
		return 0, e.errorf(KindInvalidLength, "missing separator")
	case pos == 0:
		return 0, e.errorf(KindInvalidLength, "empty prefix")
	case len(text)-pos-1 < bech32ChecksumLen:
		return 0, e.errorf(KindInvalidLength, "checksum too short")
	}
	return pos, nil
}

// decodeGroups validates text and writes its 5-bit data groups, checksum
// excluded, into dst. It returns the lowercased prefix and the group count.
// dst must hold at least len(text) bytes.
func (e Bech32) decodeGroups(dst, text []byte) (string, int, error) {
	if err := e.checkLength(text); err != nil {
		return "", 0, err
	}
	if err := e.checkCase(text); err != nil {
		return "", 0, err
	}
	pos, err := e.split(text)
	if err != nil {
		return "", 0, err
	}
	prefix := make([]byte, pos)
	for i := range prefix {
		prefix[i] = toLowerASCII(text[i])
	}

	data := text[pos+1:]
	var bad int
	for i, c := range data {
		v := decodeBech32Symbol(toLowerASCII(c))
		bad |= v
		dst[i] = byte(v)
	}
	if bad < 0 {
		memzero.Zero(dst)
		return "", 0, e.errorf(KindInvalidEncoding, "character outside bech32 alphabet")
	}

	chk := newBech32Checksum(prefix)
	for _, g := range dst[:len(data)] {
		chk.update(g)
	}
	if uint32(chk) != e.Variant.constant() {
		memzero.Zero(dst)
		return "", 0, e.errorf(KindInvalidChecksum, "checksum mismatch")
	}
	groups := len(data) - bech32ChecksumLen
	memzero.Zero(dst[groups:len(data)])
	return string(prefix), groups, nil
}

// DecodeGroups decodes text without regrouping, returning the prefix and the
// 5-bit data groups. The configured Prefix is not enforced.
func (e Bech32) DecodeGroups(text []byte) (string, *secret.Buffer, error) {
	scratch := secret.New(len(text))
	prefix, n, err := e.decodeGroups(scratch.Bytes(), text)
	if err != nil {
		scratch.Destroy()
		return "", nil, err
	}
	scratch.Truncate(n)
	return prefix, scratch, nil
}

// DecodedLen returns the number of bytes text decodes to, from its layout
// alone.
func (e Bech32) DecodedLen(text []byte) (int, error) {
	pos, err := e.split(text)
	if err != nil {
		return 0, err
	}
	return (len(text) - pos - 1 - bech32ChecksumLen) * 5 / 8, nil
}

// DecodeToSlice decodes text into dst and returns the number of bytes written.
// The prefix must match e.Prefix, ignoring case. dst is zeroed on failure.
func (e Bech32) DecodeToSlice(dst, text []byte) (int, error) {
	prefix, n, err := e.decodeToSlice(dst, text)
	if err != nil {
		return 0, err
	}
	want, err := e.normalizePrefix(e.Prefix)
	if err != nil || prefix != string(want) {
		memzero.Zero(dst)
		return 0, e.errorf(KindInvalidEncoding, "prefix %q does not match %q", prefix, e.Prefix)
	}
	return n, nil
}

// DecodeAny decodes text whatever its prefix and returns the prefix with the
// payload.
func (e Bech32) DecodeAny(text []byte) (string, *secret.Buffer, error) {
	n, err := e.DecodedLen(text)
	if err != nil {
		return "", nil, err
	}
	out := secret.New(n)
	prefix, _, err := e.decodeToSlice(out.Bytes(), text)
	if err != nil {
		out.Destroy()
		return "", nil, err
	}
	return prefix, out, nil
}

func (e Bech32) decodeToSlice(dst, text []byte) (string, int, error) {
	scratch := secret.New(len(text))
	defer scratch.Destroy()

	prefix, groups, err := e.decodeGroups(scratch.Bytes(), text)
	if err != nil {
		memzero.Zero(dst)
		return "", 0, err
	}
	if len(dst) < groups*5/8 {
		memzero.Zero(dst)
		return "", 0, e.errorf(KindInvalidLength, "destination too short")
	}
	n, err := convertBits(dst, scratch.Bytes()[:groups], 5, 8, false)
	if err != nil {
		memzero.Zero(dst)
		if ee, ok := err.(*Error); ok {
			ee.Scheme = e.Variant.String()
		}
		return "", 0, err
	}
	return prefix, n, nil
}

// ConvertBits regroups src from fromBits-wide values into toBits-wide values
// in dst, most significant bit first, and returns the number written.
//
// With pad, a final partial group is filled with zero bits. Without it,
// leftover bits must number fewer than fromBits and be zero.
func ConvertBits(dst, src []byte, fromBits, toBits uint, pad bool) (int, error) {
	if fromBits == 0 || fromBits > 8 || toBits == 0 || toBits > 8 {
		return 0, newError(KindInvalidLength, "", "group width must be 1..8 bits")
	}
	total := len(src) * int(fromBits)
	need := total / int(toBits)
	if pad && total%int(toBits) != 0 {
		need++
	}
	if len(dst) < need {
		return 0, newError(KindInvalidLength, "", "destination too short")
	}
	var bad int
	for _, v := range src {
		bad |= int(v >> fromBits)
	}
	if bad != 0 {
		return 0, newError(KindInvalidEncoding, "", fmt.Sprintf("value exceeds %d bits", fromBits))
	}
	return convertBits(dst, src, fromBits, toBits, pad)
}

func convertBits(dst, src []byte, fromBits, toBits uint, pad bool) (int, error) {
	var acc, bits uint
	maxv := uint(1)<<toBits - 1
	n := 0
	for _, v := range src {
		acc = acc<<fromBits | uint(v)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			dst[n] = byte(acc >> bits & maxv)
			n++
		}
	}
	switch {
	case pad:
		if bits > 0 {
			dst[n] = byte(acc << (toBits - bits) & maxv)
			n++
		}
	case bits >= fromBits:
		memzero.Zero(dst[:n])
		return 0, newError(KindInvalidLength, "", "too many leftover bits")
	case acc<<(toBits-bits)&maxv != 0:
		memzero.Zero(dst[:n])
		return 0, newError(KindInvalidPadding, "", "non-zero leftover bits")
	}
	return n, nil
}
