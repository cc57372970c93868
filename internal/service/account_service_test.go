package service

import (
	"errors"
	"testing"

	"github.com/falconakhil/CompeteHub/config"
	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountFixture() (AccountService, *fakeUserRepo) {
	users := newFakeUserRepo()
	tokens := NewTokenService(&config.Config{JWTSecret: "test-secret"})
	return NewAccountService(users, tokens), users
}

func TestSignupAndLogin(t *testing.T) {
	svc, users := accountFixture()

	resp, err := svc.Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)

	// Password is stored hashed, never verbatim.
	stored := users.users[resp.ID]
	assert.NotEqual(t, "s3cretpass", stored.PasswordHash)

	pair, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := accountFixture()

	_, err := svc.Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	_, err = svc.Signup(dto.SignupRequest{Username: "alice", Email: "other@example.com", Password: "s3cretpass"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := accountFixture()

	_, err := svc.Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequest{Username: "alice", Password: "wrongpass"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))

	_, err = svc.Login(dto.LoginRequest{Username: "nobody", Password: "s3cretpass"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, _ := accountFixture()

	_, err := svc.Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	pair, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.Access)
	assert.NotEmpty(t, rotated.Refresh)
}

func TestRefreshAfterAccountDeletion(t *testing.T) {
	svc, _ := accountFixture()

	user, err := svc.Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	pair, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, "s3cretpass"))

	_, err = svc.Refresh(pair.Refresh)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestDeleteRequiresPassword(t *testing.T) {
	svc, users := accountFixture()

	user, err := svc.Signup(dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	err = svc.Delete(user.ID, "wrongpass")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbidden))
	assert.Contains(t, users.users, user.ID)

	require.NoError(t, svc.Delete(user.ID, "s3cretpass"))
	assert.NotContains(t, users.users, user.ID)
}
