package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidatePair(t *testing.T) {
	userID := uuid.New()
	pair, err := GeneratePair(userID, "user@example.com", "Test User", "ADMIN",
		[]string{"product:view"}, "v1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ValidateAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.RoleCode)
	assert.Equal(t, []string{"product:view"}, claims.Privileges)
	assert.Equal(t, "v1", claims.TokenVersion)

	refreshClaims, err := ValidateRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
}

func TestTokenTypeIsEnforced(t *testing.T) {
	pair, err := GeneratePair(uuid.New(), "user@example.com", "Test User", "", nil, "v1")
	require.NoError(t, err)

	// A refresh token is not accepted where an access token is expected,
	// and vice versa.
	_, err = ValidateAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = ValidateRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	_, err := ValidateAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
