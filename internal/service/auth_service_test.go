package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(newLocalSelector(t), NewErrorLog(), "test-secret", 0)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	user, err := svc.Register(ctx, "Léa", "lea@club.fr", "motdepasse", domain.RoleAthlete)
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Empty(t, user.PasswordHash, "hash never leaves the service")

	token, logged, err := svc.Login(ctx, "lea@club.fr", "motdepasse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.Empty(t, logged.PasswordHash)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, domain.RoleAthlete, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "Léa", "lea@club.fr", "motdepasse", domain.RoleAthlete)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Autre", "lea@club.fr", "autremdp", domain.RoleCoach)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "Léa", "lea@club.fr", "motdepasse", domain.RoleAthlete)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "lea@club.fr", "mauvais")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "inconnu@club.fr", "motdepasse")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "", "lea@club.fr", "mdp", domain.RoleAthlete)
	assert.Error(t, err)
	_, err = svc.Register(ctx, "Léa", "lea@club.fr", "mdp", "admin")
	assert.Error(t, err)
}
