package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplypro/internal/core/id"
)

func TestJWT_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	user := &User{
		ID:    id.New(),
		Email: "ops@supplypro.io",
		Name:  "Ops",
		Role:  RoleUser,
	}

	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	ctx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), ctx.UserID)
	assert.Equal(t, user.Email, ctx.Email)
	assert.Equal(t, []string{"USER"}, ctx.Roles)
	assert.False(t, ctx.IsAdmin)
}

func TestJWT_AdminFlag(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, _, err := svc.GenerateAccessToken(&User{
		ID:    id.New(),
		Email: "admin@supplypro.io",
		Role:  RoleAdmin,
	})
	require.NoError(t, err)

	ctx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, ctx.IsAdmin)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	token, _, err := issuer.GenerateAccessToken(&User{ID: id.New(), Email: "x@y.z", Role: RoleUser})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestJWT_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
