package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
)

func TestCatalogArchiveHidesFromDefaultListing(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newLocalSelector(t), NewErrorLog())

	id, err := svc.Create(ctx, &domain.SwimSession{
		Name:   "Aérobie 3x800",
		Folder: "endurance",
		Items: []domain.SwimItem{
			{Position: intPtr(1), Block: "main", Label: "800 crawl", Distance: intPtr(800)},
			{Position: intPtr(0), Block: "warmup", Label: "400 mixte", Distance: intPtr(400)},
		},
	})
	require.NoError(t, err)

	session, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, session.Items, 2)
	assert.Equal(t, "warmup", session.Items[0].Block, "items come back in persisted order")

	require.NoError(t, svc.SetArchived(ctx, id, true))

	live, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, live)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Archived)

	require.NoError(t, svc.SetArchived(ctx, id, false))
	live, err = svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, live, 1)
}

func TestCatalogFolders(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newLocalSelector(t), NewErrorLog())

	for _, s := range []domain.SwimSession{
		{Name: "A", Folder: "vitesse"},
		{Name: "B", Folder: "endurance"},
		{Name: "C", Folder: "endurance"},
		{Name: "D"},
	} {
		session := s
		_, err := svc.Create(ctx, &session)
		require.NoError(t, err)
	}

	folders, err := svc.Folders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"endurance", "vitesse"}, folders)
}
