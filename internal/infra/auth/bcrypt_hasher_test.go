package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	// MinCost keeps the test fast; the production constructor uses cost 10.
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "my_secure_password_123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong_password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same_password")
	require.NoError(t, err)
	second, err := hasher.Hash("same_password")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of one password differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same_password", first))
	assert.True(t, hasher.Check("same_password", second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("password", ""))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
