package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	// MinCost keeps the hashing fast; the cost does not change the contract.
	verifier := NewBcryptVerifier(bcrypt.MinCost)

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()

		hashed, err := verifier.Hash("correct horse battery")
		require.NoError(t, err)
		require.NotEmpty(t, hashed)
		assert.NotEqual(t, "correct horse battery", hashed)

		assert.NoError(t, verifier.Compare(hashed, "correct horse battery"))
	})

	t.Run("wrong password fails comparison", func(t *testing.T) {
		t.Parallel()

		hashed, err := verifier.Hash("correct horse battery")
		require.NoError(t, err)

		assert.Error(t, verifier.Compare(hashed, "wrong password"))
	})

	t.Run("zero cost selects the bcrypt default", func(t *testing.T) {
		t.Parallel()

		v := NewBcryptVerifier(0)
		assert.Equal(t, bcrypt.DefaultCost, v.cost)
	})
}

func TestGenerateResetToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateResetToken()
	require.NoError(t, err)

	// 32 random bytes hex-encoded
	assert.Len(t, token, 64)
	assert.Regexp(t, "^[0-9a-f]+$", token)

	other, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
