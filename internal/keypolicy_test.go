package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap keeps Argon2id fast enough for unit tests.
var cheap = KeyPolicy{KDF: "argon2id", KDFMemMB: 1, KDFTime: 1, KDFParallel: 1}

func TestKeyFromPassphraseDeterministic(t *testing.T) {
	for _, policy := range []KeyPolicy{cheap, {KDF: "none"}} {
		k1, err := KeyFromPassphrase("correct horse battery staple", policy)
		require.NoError(t, err)
		k2, err := KeyFromPassphrase("correct horse battery staple", policy)
		require.NoError(t, err)
		assert.Equal(t, k1, k2)
		assert.NoError(t, k1.Validate())
		assert.GreaterOrEqual(t, k1.B, 0)
		assert.Less(t, k1.B, Modulus)
	}
}

func TestKeyFromPassphraseKDFsDiffer(t *testing.T) {
	a, err := EffectiveKeyMaterial("passphrase", cheap)
	require.NoError(t, err)
	b, err := EffectiveKeyMaterial("passphrase", KeyPolicy{KDF: "none"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestKeyFromPassphraseErrors(t *testing.T) {
	_, err := KeyFromPassphrase("   ", cheap)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)

	_, err = KeyFromPassphrase("secret", KeyPolicy{KDF: "scrypt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown KDF")
}

func TestDefaultKeyPolicy(t *testing.T) {
	p := DefaultKeyPolicy()
	assert.Equal(t, "argon2id", p.KDF)
	assert.NotZero(t, p.KDFMemMB)
	assert.NotZero(t, p.KDFTime)
	assert.NotZero(t, p.KDFParallel)
}
