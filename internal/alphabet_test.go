package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetShape(t *testing.T) {
	require.Equal(t, 36, Modulus)
	require.Len(t, Symbols, Modulus)
	require.Len(t, Index, Modulus, "symbols must be distinct")
	assert.Equal(t, 'A', SymbolAt(0))
	assert.Equal(t, 'Z', SymbolAt(25))
	assert.Equal(t, '0', SymbolAt(26))
	assert.Equal(t, '9', SymbolAt(35))
}

func TestSymbolIndexRoundTrip(t *testing.T) {
	for i := 0; i < Modulus; i++ {
		idx, ok := IndexOf(SymbolAt(i))
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	for _, r := range Symbols {
		idx, ok := IndexOf(r)
		require.True(t, ok)
		assert.Equal(t, r, SymbolAt(idx))
	}
}

func TestSymbolAtReducesIndex(t *testing.T) {
	assert.Equal(t, 'A', SymbolAt(36))
	assert.Equal(t, '9', SymbolAt(-1))
	assert.Equal(t, 'B', SymbolAt(73))
}

func TestIndexOfOutsideAlphabet(t *testing.T) {
	for _, r := range []rune{'a', ' ', '!', 'É', '٣'} {
		_, ok := IndexOf(r)
		assert.False(t, ok, "%q", r)
		assert.False(t, InAlphabet(r), "%q", r)
	}
}

func TestSpaceMarkerIsInAlphabet(t *testing.T) {
	require.Len(t, SpaceMarker, 8)
	for _, r := range SpaceMarker {
		assert.True(t, InAlphabet(r), "%q", r)
	}
}
