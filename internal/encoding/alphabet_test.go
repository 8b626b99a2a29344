package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The arithmetic mappings must agree with a plain table on every input.

func TestNibbleMappingMatchesTable(t *testing.T) {
	for n := 0; n < 16; n++ {
		require.Equal(t, "0123456789abcdef"[n], encodeNibble(n, hexLowerShift), "lower %d", n)
		require.Equal(t, "0123456789ABCDEF"[n], encodeNibble(n, hexUpperShift), "upper %d", n)
	}
	for c := 0; c < 256; c++ {
		want := strings.IndexByte("0123456789abcdef", byte(c))
		if want < 0 {
			want = strings.IndexByte("0123456789ABCDEF", byte(c))
		}
		require.Equal(t, want, decodeNibble(byte(c)), "char %#x", c)
	}
}

func TestBase64MappingMatchesTable(t *testing.T) {
	tables := map[string]base64Alphabet{
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/": base64StdAlphabet,
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_": base64URLAlphabet,
	}
	for table, a := range tables {
		for v := 0; v < 64; v++ {
			require.Equal(t, table[v], a.encode(v), "value %d", v)
		}
		for c := 0; c < 256; c++ {
			require.Equal(t, strings.IndexByte(table, byte(c)), a.decode(byte(c)), "char %#x", c)
		}
	}
}

func TestBech32MappingMatchesTable(t *testing.T) {
	for v := 0; v < 32; v++ {
		require.Equal(t, bech32Charset[v], encodeBech32Symbol(v), "value %d", v)
	}
	for c := 0; c < 256; c++ {
		require.Equal(t, strings.IndexByte(bech32Charset, byte(c)), decodeBech32Symbol(byte(c)), "char %#x", c)
	}
}

func TestToLowerASCII(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := byte(c)
		if c >= 'A' && c <= 'Z' {
			want += 'a' - 'A'
		}
		require.Equal(t, want, toLowerASCII(byte(c)), "char %#x", c)
	}
}

func TestRangeMask(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := 0
		if c >= 'g' && c <= 'q' {
			want = -1
		}
		require.Equal(t, want, rangeMask(c, 'g', 'q'), "char %#x", c)
	}
}

func TestChecksumUpdateMatchesBranchingForm(t *testing.T) {
	ref := func(c uint32, v byte) uint32 {
		top := c >> 25
		c = (c&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>i)&1 == 1 {
				c ^= bech32Generator[i]
			}
		}
		return c
	}
	state := uint32(1)
	c := bech32Checksum(1)
	for i := 0; i < 500; i++ {
		v := byte(i*7) & 31
		state = ref(state, v)
		c.update(v)
		require.Equal(t, state, uint32(c), "step %d", i)
	}
}
