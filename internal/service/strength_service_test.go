package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
	"swimtrack/training-tracker/internal/repository/localmirror"
	"swimtrack/training-tracker/internal/repository/selector"
)

func newLocalSelector(t *testing.T) *selector.Selector {
	t.Helper()
	store, err := localmirror.NewStore(t.TempDir())
	require.NoError(t, err)
	return selector.New(nil, localmirror.NewProvider(store), false, nil)
}

func seedStrengthSession(t *testing.T, svc StrengthService) int64 {
	t.Helper()
	id, err := svc.CreateSession(context.Background(), &domain.StrengthSession{
		Title: "Force haut du corps",
		Cycle: domain.CycleForce,
		Items: []domain.StrengthItem{
			{ExerciseID: 101, Sets: intPtr(5), Reps: intPtr(3), Position: intPtr(0)},
			{ExerciseID: 102, Sets: intPtr(3), Reps: intPtr(8), Position: intPtr(1)},
		},
	})
	require.NoError(t, err)
	return id
}

func TestCreateSessionRejectsBadItems(t *testing.T) {
	svc := NewStrengthService(newLocalSelector(t), NewErrorLog())
	_, err := svc.CreateSession(context.Background(), &domain.StrengthSession{
		Title: "Séance",
		Cycle: domain.CycleEndurance,
		Items: []domain.StrengthItem{{}, {}, {Reps: intPtr(-4)}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#3")
}

func TestCreateSessionRejectsUnknownCycle(t *testing.T) {
	svc := NewStrengthService(newLocalSelector(t), NewErrorLog())
	_, err := svc.CreateSession(context.Background(), &domain.StrengthSession{
		Title: "Séance",
		Cycle: "tapering",
	})
	require.Error(t, err)
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewStrengthService(sel, NewErrorLog())
	sessionID := seedStrengthSession(t, svc)

	run, err := svc.StartRun(ctx, 7, sessionID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RunInProgress, run.Status)

	_, err = svc.LogSet(ctx, run.ID, &domain.SetLog{ExerciseID: 101, SetIndex: 0, Reps: 3, Weight: 90})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProgress(ctx, run.ID, 40))

	finalLogs := []domain.SetLog{
		{ExerciseID: 101, SetIndex: 0, Reps: 3, Weight: 90},
		{ExerciseID: 101, SetIndex: 1, Reps: 3, Weight: 95},
		{ExerciseID: 102, SetIndex: 0, Reps: 8, Weight: 40},
	}
	require.NoError(t, svc.SaveRun(ctx, run.ID, finalLogs))

	saved, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunCompleted, saved.Status)
	assert.Equal(t, 100, saved.Progress)
	require.NotNil(t, saved.CompletedAt)
	assert.Len(t, saved.Logs, 3)

	// completed runs accept no further writes
	_, err = svc.LogSet(ctx, run.ID, &domain.SetLog{ExerciseID: 101, Reps: 1, Weight: 100})
	assert.ErrorIs(t, err, ErrRunFinished)
	assert.ErrorIs(t, svc.SaveRun(ctx, run.ID, nil), ErrRunFinished)
	assert.ErrorIs(t, svc.AbandonRun(ctx, run.ID), ErrRunFinished)
}

func TestAbandonRunIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc := NewStrengthService(newLocalSelector(t), NewErrorLog())
	sessionID := seedStrengthSession(t, svc)

	run, err := svc.StartRun(ctx, 7, sessionID, nil)
	require.NoError(t, err)
	require.NoError(t, svc.AbandonRun(ctx, run.ID))

	abandoned, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunAbandoned, abandoned.Status)
	assert.ErrorIs(t, svc.UpdateProgress(ctx, run.ID, 10), ErrRunFinished)
}

func TestRunAssignmentCascade(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewStrengthService(sel, NewErrorLog())
	sessionID := seedStrengthSession(t, svc)

	athleteID := int64(7)
	assignmentID, err := sel.Provider().Assignments().Create(ctx, &domain.Assignment{
		SessionID: sessionID,
		Kind:      domain.KindStrengthBuild,
		UserID:    &athleteID,
		Date:      "2024-03-10",
		Slot:      domain.SlotEvening,
		Status:    domain.StatusAssigned,
	})
	require.NoError(t, err)

	run, err := svc.StartRun(ctx, athleteID, sessionID, &assignmentID)
	require.NoError(t, err)

	assignment, err := sel.Provider().Assignments().GetByID(ctx, assignmentID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, assignment.Status)

	require.NoError(t, svc.SaveRun(ctx, run.ID, []domain.SetLog{{ExerciseID: 101, Reps: 5, Weight: 80}}))
	assignment, err = sel.Provider().Assignments().GetByID(ctx, assignmentID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, assignment.Status)
}

func TestDeleteRunRevertsAssignment(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewStrengthService(sel, NewErrorLog())
	sessionID := seedStrengthSession(t, svc)

	athleteID := int64(7)
	assignmentID, err := sel.Provider().Assignments().Create(ctx, &domain.Assignment{
		SessionID: sessionID,
		Kind:      domain.KindStrengthBuild,
		UserID:    &athleteID,
		Date:      "2024-03-10",
		Slot:      domain.SlotMorning,
		Status:    domain.StatusAssigned,
	})
	require.NoError(t, err)

	run, err := svc.StartRun(ctx, athleteID, sessionID, &assignmentID)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteRun(ctx, run.ID))

	_, err = svc.GetRun(ctx, run.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assignment, err := sel.Provider().Assignments().GetByID(ctx, assignmentID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAssigned, assignment.Status)
}

func TestOneRmOnlyRaises(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewStrengthService(sel, NewErrorLog())
	sessionID := seedStrengthSession(t, svc)

	run, err := svc.StartRun(ctx, 7, sessionID, nil)
	require.NoError(t, err)

	// 70 x (1 + 5/30) = 81.67 -> 82
	_, err = svc.LogSet(ctx, run.ID, &domain.SetLog{ExerciseID: 101, Reps: 5, Weight: 70})
	require.NoError(t, err)
	record, err := sel.Provider().OneRm().Get(ctx, 7, 101)
	require.NoError(t, err)
	assert.Equal(t, 82.0, record.Max)

	// a weaker set leaves the record untouched
	_, err = svc.LogSet(ctx, run.ID, &domain.SetLog{ExerciseID: 101, Reps: 1, Weight: 75})
	require.NoError(t, err)
	record, err = sel.Provider().OneRm().Get(ctx, 7, 101)
	require.NoError(t, err)
	assert.Equal(t, 82.0, record.Max)

	// a stronger one replaces it
	_, err = svc.LogSet(ctx, run.ID, &domain.SetLog{ExerciseID: 101, Reps: 1, Weight: 85})
	require.NoError(t, err)
	record, err = sel.Provider().OneRm().Get(ctx, 7, 101)
	require.NoError(t, err)
	assert.Equal(t, 85.0, record.Max)

	// an inestimable set is ignored, not an error
	_, err = svc.LogSet(ctx, run.ID, &domain.SetLog{ExerciseID: 101, Reps: 0, Weight: 200})
	require.NoError(t, err)
	record, err = sel.Provider().OneRm().Get(ctx, 7, 101)
	require.NoError(t, err)
	assert.Equal(t, 85.0, record.Max)
}

func TestRunHistoryAggregatesRunLogs(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewStrengthService(sel, NewErrorLog())
	sessionID := seedStrengthSession(t, svc)

	run, err := svc.StartRun(ctx, 7, sessionID, nil)
	require.NoError(t, err)
	require.NoError(t, svc.SaveRun(ctx, run.ID, []domain.SetLog{
		{ExerciseID: 101, Reps: 5, Weight: 80},
		{ExerciseID: 101, Reps: 5, Weight: 85},
	}))

	buckets, err := svc.RunHistory(ctx, 7, PeriodDay, HistoryRange{}, false)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, 10, buckets[0].Volume)
	assert.Equal(t, 825.0, buckets[0].Tonnage)
}
