package localmirror_test

import (
	"context"
	"testing"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/localmirror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_PasswordHashSurvivesMirror(t *testing.T) {
	dir := t.TempDir()
	store, err := localmirror.NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	id, err := localmirror.NewProvider(store).Users().Create(ctx, &domain.User{
		Name:         "Léa",
		Email:        "lea@club.fr",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domain.RoleAthlete,
	})
	require.NoError(t, err)

	// Re-open the mirror over the same directory so the read goes through
	// the persisted blob, not anything held in memory.
	store, err = localmirror.NewStore(dir)
	require.NoError(t, err)
	users := localmirror.NewProvider(store).Users()

	byEmail, err := users.GetByEmail(ctx, "lea@club.fr")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", byEmail.PasswordHash)

	byID, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", byID.PasswordHash)
}
