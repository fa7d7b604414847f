package auth_test

import (
	"testing"

	"github.com/pinpin/travel-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	// Same input hashes to different values (embedded salt)
	hash2, err := auth.HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := auth.HashPassword("correcthorse")
	require.NoError(t, err)

	assert.True(t, auth.CheckPasswordHash("correcthorse", hash))
	assert.False(t, auth.CheckPasswordHash("wrongpassword", hash))
	assert.False(t, auth.CheckPasswordHash("", hash))
	assert.False(t, auth.CheckPasswordHash("correcthorse", "not-a-hash"))
}
