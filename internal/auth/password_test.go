package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.True(t, ComparePassword(hash, "hunter22"))
	assert.False(t, ComparePassword(hash, "hunter23"))
	assert.False(t, ComparePassword(hash, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	second, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	// Same password, different salt, different hash.
	assert.NotEqual(t, first, second)
}
