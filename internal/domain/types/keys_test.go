package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctenc/internal/domain/types"
)

func TestParseKeyName(t *testing.T) {
	for _, ok := range []string{"a", "validator-1", "node_key.v2", strings.Repeat("k", 64)} {
		name, err := types.ParseKeyName(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, types.KeyName(ok), name)
	}
	for _, bad := range []string{"", ".hidden", "../etc", "a/b", "sp ace", "ünï", strings.Repeat("k", 65)} {
		_, err := types.ParseKeyName(bad)
		require.ErrorIs(t, err, types.ErrInvalidKeyName, bad)
	}
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := types.ParseAlgorithm("ed25519")
	require.NoError(t, err)
	assert.Equal(t, types.AlgorithmEd25519, alg)

	_, err = types.ParseAlgorithm("rsa")
	require.Error(t, err)
}
