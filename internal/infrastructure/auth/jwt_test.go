package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService("test-secret", 30, 7)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(42, []string{"brand:read", "brand:write"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(30*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, []string{"brand:read", "brand:write"}, claims.Scopes)
	assert.NotEmpty(t, claims.ID)

	refreshClaims, err := svc.Verify(pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Scopes)
}

func TestJWTService_Verify_TypeMismatch(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(1, nil)
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify(pair.RefreshToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	pair, err := newTestService().Generate(1, nil)
	require.NoError(t, err)

	other := NewJWTService("different-secret", 30, 7)
	_, err = other.Verify(pair.AccessToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := newTestService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestJWTService_Revoke(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(7, []string{"brand:read"})
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)

	svc.Revoke(pair.AccessToken)

	_, err = svc.Verify(pair.AccessToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The refresh token carries its own identifier and stays valid.
	_, err = svc.Verify(pair.RefreshToken, TokenTypeRefresh)
	assert.NoError(t, err)
}

func TestJWTService_Revoke_InvalidTokenIsNoop(t *testing.T) {
	svc := newTestService()
	svc.Revoke("garbage")
	assert.Equal(t, 0, svc.revoked.Len())
}

func TestJWTService_Refresh_RotatesAndRevokesOld(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(9, []string{"brand:read"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.RefreshToken, []string{"brand:read", "brand:write"})
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// Replaying the consumed refresh token must fail.
	_, err = svc.Refresh(pair.RefreshToken, nil)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := svc.Verify(rotated.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
	assert.Equal(t, []string{"brand:read", "brand:write"}, claims.Scopes)
}

func TestJWTService_Refresh_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate(1, nil)
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken, nil)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevocationList_PurgesExpiredEntries(t *testing.T) {
	list := NewRevocationList()

	list.Revoke("expired", time.Now().UTC().Add(-time.Minute))
	list.Revoke("live", time.Now().UTC().Add(time.Hour))

	assert.False(t, list.IsRevoked("expired"))
	assert.True(t, list.IsRevoked("live"))
	assert.Equal(t, 1, list.Len())
}

func TestRevocationList_EmptyIDIgnored(t *testing.T) {
	list := NewRevocationList()
	list.Revoke("", time.Now().UTC().Add(time.Hour))
	assert.False(t, list.IsRevoked(""))
	assert.Equal(t, 0, list.Len())
}
