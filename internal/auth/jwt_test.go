package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	const userID = "11111111-1111-1111-1111-111111111111"

	token, err := GenerateToken(secret, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := ParseUserID(secret, token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestParseUserIDRejects(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseUserID(secret, "not-a-token")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken([]byte("other-secret"), "11111111-1111-1111-1111-111111111111")
		require.NoError(t, err)
		_, err = ParseUserID(secret, token)
		require.Error(t, err)
	})

	t.Run("non-uuid user id", func(t *testing.T) {
		token, err := GenerateToken(secret, "bob")
		require.NoError(t, err)
		_, err = ParseUserID(secret, token)
		require.Error(t, err)
	})
}
