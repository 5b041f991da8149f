package auth_test

import (
	"context"
	"testing"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	a := auth.New("test-secret")
	user := &model.User{ID: 42, Tier: model.TierPro, IsAdmin: false}

	token, err := a.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), principal.UserID)
	assert.Equal(t, model.TierPro, principal.Tier)
	assert.False(t, principal.IsAdmin)
}

func TestValidateToken_AdminClaim(t *testing.T) {
	a := auth.New("test-secret")
	token, err := a.GenerateToken(&model.User{ID: 1, Tier: model.TierFree, IsAdmin: true})
	require.NoError(t, err)

	principal, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, principal.IsAdmin)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	a := auth.New("test-secret")
	token, err := a.GenerateToken(&model.User{ID: 1, Tier: model.TierFree})
	require.NoError(t, err)

	other := auth.New("another-secret")
	principal, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, principal)
}

func TestValidateToken_Garbage(t *testing.T) {
	a := auth.New("test-secret")
	principal, err := a.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, principal)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, auth.CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, auth.CheckPassword(hash, "wrong password"))
	assert.False(t, auth.CheckPassword("", "anything"))
}

func TestPrincipalContext(t *testing.T) {
	p := &auth.Principal{UserID: 7, Tier: model.TierPremium}
	ctx := auth.WithPrincipal(context.Background(), p)

	got, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = auth.FromContext(context.Background())
	assert.False(t, ok)
}
