package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 24*time.Hour)

	token, err := issuer.Generate("admin-1", "admin")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenExpiresAfterValidityWindow(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("test-secret", 24*time.Hour)
	issuer.now = func() time.Time { return base }

	token, err := issuer.Generate("admin-1", "admin")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, base.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())

	// One second past the window the token no longer verifies.
	issued := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }
	stale, err := issuer.Generate("admin-1", "admin")
	require.NoError(t, err)

	_, err = issuer.Validate(stale)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("another-secret", time.Hour)

	token, err := issuer.Generate("admin-1", "admin")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsTampering(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Generate("admin-1", "admin")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = issuer.Validate(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
