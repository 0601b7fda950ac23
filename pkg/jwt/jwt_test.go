package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TokenTypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseToken_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "bob", "refresh", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TokenTypeAccess, token)
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "bob", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), TokenTypeAccess, token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "bob", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TokenTypeAccess, token)
	assert.Error(t, err)
}

func TestShouldRotateToken(t *testing.T) {
	token, err := GenerateToken(secret, 1, "bob", TokenTypeAccess, 10*time.Second)
	require.NoError(t, err)
	claims, err := ParseToken(secret, TokenTypeAccess, token)
	require.NoError(t, err)

	assert.True(t, ShouldRotateToken(claims, time.Minute))
	assert.False(t, ShouldRotateToken(claims, time.Second))
}
