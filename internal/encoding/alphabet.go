package encoding

// rangeMask returns -1 when lo <= c <= hi and 0 otherwise.
// All operands must lie in [0, 255].
func rangeMask(c, lo, hi int) int {
	return ((lo - 1 - c) & (c - hi - 1)) >> 8
}

func eqMask(c, v int) int { return rangeMask(c, v, v) }

// toLowerASCII folds A-Z to a-z.
func toLowerASCII(c byte) byte {
	return c | byte(rangeMask(int(c), 'A', 'Z')&0x20)
}

// ---------- hex ----------

const (
	hexLowerShift int = 'a' - '0' - 10
	hexUpperShift int = 'A' - '0' - 10
)

// encodeNibble maps 0..15 to '0'..'9' then letters starting at '0'+10+shift.
func encodeNibble(n, shift int) byte {
	return byte(n + '0' + (((9 - n) >> 8) & shift))
}

// decodeNibble maps [0-9a-fA-F] to 0..15 and anything else to -1.
func decodeNibble(c byte) int {
	src := int(c)
	ret := -1
	ret += rangeMask(src, '0', '9') & (src - '0' + 1)
	ret += rangeMask(src, 'A', 'F') & (src - 'A' + 11)
	ret += rangeMask(src, 'a', 'f') & (src - 'a' + 11)
	return ret
}

// ---------- base64 ----------

// base64Alphabet is A-Z a-z 0-9 followed by two variant symbols.
type base64Alphabet struct {
	sym62 int
	sym63 int
}

var (
	base64StdAlphabet = base64Alphabet{sym62: '+', sym63: '/'}
	base64URLAlphabet = base64Alphabet{sym62: '-', sym63: '_'}
)

// encode maps 0..63 to its symbol.
func (a base64Alphabet) encode(v int) byte {
	diff := int('A')
	diff += ((25 - v) >> 8) & ('a' - 'A' - 26)
	diff += ((51 - v) >> 8) & ('0' - 'a' - 26)
	diff += ((61 - v) >> 8) & (a.sym62 - '0' - 10)
	diff += ((62 - v) >> 8) & (a.sym63 - a.sym62 - 1)
	return byte(v + diff)
}

// decode maps a symbol to 0..63 and anything else to -1.
func (a base64Alphabet) decode(c byte) int {
	src := int(c)
	ret := -1
	ret += rangeMask(src, 'A', 'Z') & (src - 'A' + 1)
	ret += rangeMask(src, 'a', 'z') & (src - 'a' + 27)
	ret += rangeMask(src, '0', '9') & (src - '0' + 53)
	ret += eqMask(src, a.sym62) & 63
	ret += eqMask(src, a.sym63) & 64
	return ret
}

// ---------- bech32 ----------

const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// encodeBech32Symbol maps 0..31 to its symbol, touching every charset entry.
func encodeBech32Symbol(v int) byte {
	var out int
	for i := 0; i < len(bech32Charset); i++ {
		out |= eqMask(v, i) & int(bech32Charset[i])
	}
	return byte(out)
}

// decodeBech32Symbol maps a lowercase symbol to 0..31 and anything else to
// -1, touching every charset entry.
func decodeBech32Symbol(c byte) int {
	src := int(c)
	ret := -1
	for i := 0; i < len(bech32Charset); i++ {
		ret += eqMask(src, int(bech32Charset[i])) & (i + 1)
	}
	return ret
}
