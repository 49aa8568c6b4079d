package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
	"swimtrack/training-tracker/internal/repository/selector"
)

func newExerciseService(t *testing.T) (ExerciseService, *selector.Selector) {
	t.Helper()
	sel := newLocalSelector(t)
	return NewExerciseService(sel, nil, NewErrorLog()), sel
}

func TestExerciseCRUD(t *testing.T) {
	ctx := context.Background()
	svc, _ := newExerciseService(t)

	id, err := svc.Create(ctx, &domain.Exercise{
		Name:      "Développé couché",
		Endurance: domain.CycleParams{Sets: intPtr(4), Reps: intPtr(15)},
		Force:     domain.CycleParams{Sets: intPtr(5), Reps: intPtr(3), Percent1RM: floatPtr(85)},
	})
	require.NoError(t, err)

	stored, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Développé couché", stored.Name)
	assert.Equal(t, domain.KindStrength, stored.Kind, "kind defaults to strength")
	assert.Equal(t, 85.0, *stored.Force.Percent1RM)
	assert.Nil(t, stored.Hypertrophie.Sets)

	stored.Description = "Barre, prise moyenne"
	require.NoError(t, svc.Update(ctx, stored))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Barre, prise moyenne", list[0].Description)
}

func TestExerciseCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newExerciseService(t)

	_, err := svc.Create(ctx, &domain.Exercise{})
	assert.Error(t, err)

	_, err = svc.Create(ctx, &domain.Exercise{Name: "Squat", Kind: "cardio"})
	assert.Error(t, err)
}

func TestExerciseDeleteCascadesToSessions(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	exercises := NewExerciseService(sel, nil, NewErrorLog())
	sessions := NewStrengthService(sel, NewErrorLog())

	exID, err := exercises.Create(ctx, &domain.Exercise{Name: "Squat"})
	require.NoError(t, err)
	keptID, err := exercises.Create(ctx, &domain.Exercise{Name: "Tractions"})
	require.NoError(t, err)

	sessionID, err := sessions.CreateSession(ctx, &domain.StrengthSession{
		Title: "Jambes",
		Cycle: domain.CycleForce,
		Items: []domain.StrengthItem{
			{ExerciseID: exID, Position: intPtr(0)},
			{ExerciseID: keptID, Position: intPtr(1)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, exercises.Delete(ctx, exID))

	_, err = exercises.GetByID(ctx, exID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	session, err := sessions.GetSession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, session.Items, 1)
	assert.Equal(t, keptID, session.Items[0].ExerciseID)
}

func TestIllustrationWithoutStorage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newExerciseService(t)

	_, err := svc.RequestIllustrationUpload(ctx, "image/png")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = svc.IllustrationURL(ctx, 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
