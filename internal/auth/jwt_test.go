package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestIssueAndValidateAccessToken(t *testing.T) {
	t.Parallel()

	token, err := IssueAccessToken(testSecret, "olive@example.com", "u_abc", "owner", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "olive@example.com", claims.Email)
	assert.Equal(t, "u_abc", claims.OwnerID)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Empty(t, claims.SessionID)
	assert.Equal(t, "rentfolio", claims.Issuer)
}

func TestIssueRefreshToken_CarriesSessionID(t *testing.T) {
	t.Parallel()

	token, err := IssueRefreshToken(testSecret, "olive@example.com", "u_abc", "owner", "sess-1", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestValidateToken_Rejections(t *testing.T) {
	t.Parallel()

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()
		_, err := ValidateToken(testSecret, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		token, err := IssueAccessToken(testSecret, "olive@example.com", "u_abc", "owner", time.Hour)
		require.NoError(t, err)

		_, err = ValidateToken("a-different-secret-entirely-here", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		token, err := IssueAccessToken(testSecret, "olive@example.com", "u_abc", "owner", -time.Minute)
		require.NoError(t, err)

		_, err = ValidateToken(testSecret, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
