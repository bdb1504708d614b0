package accum

import (
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/alxiong/ragu/header"
)

func TestIdentityScheme(t *testing.T) {
	var s Identity

	trivial := s.Trivial()
	require.Equal(t, Uncompressed, trivial.Mode())
	require.True(t, s.Verify(header.TrivialSuffix, nil, trivial))

	out := []constraint.Element{{7}}
	acc, err := s.Merge(trivial, trivial, Obligation{
		Step:   0,
		Output: Operand{Suffix: 1, Output: out},
	})
	require.NoError(t, err)
	require.True(t, s.Verify(1, out, acc))
	require.False(t, s.Verify(2, out, acc))
	require.False(t, s.Verify(1, []constraint.Element{{8}}, acc))

	compressed, err := s.Compress(acc)
	require.NoError(t, err)
	require.Equal(t, Compressed, compressed.Mode())
	require.True(t, s.Verify(1, out, compressed))

	back, err := s.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, Uncompressed, back.Mode())
	require.True(t, s.Verify(1, out, back))

	payload, err := s.Marshal(acc)
	require.NoError(t, err)
	wire, err := s.Unmarshal(Uncompressed, payload)
	require.NoError(t, err)
	require.True(t, s.Verify(1, out, wire))
}

func TestModeString(t *testing.T) {
	require.Equal(t, "uncompressed", Uncompressed.String())
	require.Equal(t, "compressed", Compressed.String())
	require.Equal(t, "invalid", Mode(9).String())
}
