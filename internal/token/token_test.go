package token_test

import (
	"testing"
	"time"

	"github.com/pinpin/travel-backend/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue(42, "alice", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)

	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "alice", claims.AccountName)
	assert.Equal(t, "Alice", claims.Nickname)
}

func TestVerify_Expired(t *testing.T) {
	issuer := token.NewIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue(1, "alice", "Alice")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := token.NewIssuer("secret-a", time.Hour)
	other := token.NewIssuer("secret-b", time.Hour)

	signed, err := issuer.Issue(1, "alice", "Alice")
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(input)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	}
}
