package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sleep#2025")
	require.NoError(t, err)
	assert.NotEqual(t, "Sleep#2025", hash)

	assert.True(t, VerifyPassword(hash, "Sleep#2025"))
	assert.False(t, VerifyPassword(hash, "sleep#2025"))
	assert.False(t, VerifyPassword(hash, ""))
	assert.False(t, VerifyPassword("not-a-hash", "Sleep#2025"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("Sleep#2025")
	require.NoError(t, err)
	h2, err := HashPassword("Sleep#2025")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
