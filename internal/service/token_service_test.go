package service

import (
	"testing"

	"github.com/falconakhil/CompeteHub/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewTokenService(&config.Config{JWTSecret: "test-secret"})

	access, refresh, err := svc.GenerateTokens(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService(&config.Config{JWTSecret: "secret-a"})
	verifier := NewTokenService(&config.Config{JWTSecret: "secret-b"})

	access, _, err := issuer.GenerateTokens(42, "alice")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	require.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewTokenService(&config.Config{JWTSecret: "test-secret"})

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
