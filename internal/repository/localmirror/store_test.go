package localmirror_test

import (
	"context"
	"testing"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
	"swimtrack/training-tracker/internal/repository/localmirror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *localmirror.Store {
	t.Helper()
	store, err := localmirror.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	payload := []byte(`[{"id":1,"name":"crawl"},{"id":2,"name":"pull"}]`)
	store.Save(localmirror.KeyExercises, payload)
	assert.Equal(t, payload, store.Get(localmirror.KeyExercises))
}

func TestStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)
	assert.Nil(t, store.Get(localmirror.KeySessions))
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t)
	store.Save(localmirror.KeySessions, []byte(`[]`))
	store.Remove(localmirror.KeySessions)
	assert.Nil(t, store.Get(localmirror.KeySessions))
	// Removing again is a no-op, not a failure.
	store.Remove(localmirror.KeySessions)
}

func TestStore_ResetAll(t *testing.T) {
	store := newTestStore(t)
	store.Save(localmirror.KeySessions, []byte(`[1]`))
	store.Save(localmirror.KeyExercises, []byte(`[2]`))
	store.ResetAll()
	assert.Nil(t, store.Get(localmirror.KeySessions))
	assert.Nil(t, store.Get(localmirror.KeyExercises))
}

func TestSessionRepo_CreateAndList(t *testing.T) {
	provider := localmirror.NewProvider(newTestStore(t))
	repo := provider.Sessions()
	ctx := context.Background()

	effort, feeling, distance := 4, 3, 2000
	id, err := repo.Create(ctx, &domain.TrainingSession{
		AthleteName: "Léa",
		Date:        "2024-01-01",
		Slot:        domain.SlotMorning,
		Effort:      &effort,
		Feeling:     &feeling,
		Distance:    &distance,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	sessions, err := repo.List(ctx, repository.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, id, sessions[0].ID)
	assert.Equal(t, 2000, *sessions[0].Distance)
	assert.Equal(t, 4, *sessions[0].Effort)
}

func TestSessionRepo_CorruptBlobDegradesToEmpty(t *testing.T) {
	store := newTestStore(t)
	store.Save(localmirror.KeySessions, []byte(`{not json]`))

	sessions, err := localmirror.NewProvider(store).Sessions().List(context.Background(), repository.SessionFilter{})
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessionRepo_UpdateMissing(t *testing.T) {
	provider := localmirror.NewProvider(newTestStore(t))
	err := provider.Sessions().Update(context.Background(), &domain.TrainingSession{ID: 42})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOneRmRepo_UpsertReplacesPair(t *testing.T) {
	provider := localmirror.NewProvider(newTestStore(t))
	repo := provider.OneRm()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.OneRmRecord{AthleteID: 1, ExerciseID: 2, Max: 80}))
	require.NoError(t, repo.Upsert(ctx, &domain.OneRmRecord{AthleteID: 1, ExerciseID: 2, Max: 85}))
	require.NoError(t, repo.Upsert(ctx, &domain.OneRmRecord{AthleteID: 1, ExerciseID: 3, Max: 60}))

	records, err := repo.ListByAthlete(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 2)

	rec, err := repo.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 85.0, rec.Max)
}
