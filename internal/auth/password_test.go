package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password1", hash)

	assert.True(t, ComparePassword(hash, "password1"))
	assert.False(t, ComparePassword(hash, "password2"))
}

func TestComparePassword_BadHash(t *testing.T) {
	assert.False(t, ComparePassword("not-a-bcrypt-hash", "password1"))
}
