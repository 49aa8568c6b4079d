package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iptr(v int) *int       { return &v }
func i64ptr(v int64) *int64 { return &v }

func TestSessionMapper_RequiredFields(t *testing.T) {
	// Blank date: row rejected outright.
	assert.Nil(t, sessionToDomain(sessionRow{AthleteName: "Léa", Date: "   "}))

	// Neither athlete name nor athlete id: rejected.
	assert.Nil(t, sessionToDomain(sessionRow{Date: "2024-01-01", AthleteName: "  "}))

	// Athlete id alone is enough.
	s := sessionToDomain(sessionRow{Date: "2024-01-01", AthleteID: i64ptr(7)})
	require.NotNil(t, s)
	assert.Equal(t, int64(7), *s.AthleteID)
}

func TestSessionMapper_ScaleConversion(t *testing.T) {
	// Backend rows carry the 10-scale; the domain always sees 1-5.
	row := sessionRow{
		Date:        "2024-01-01",
		AthleteName: "Léa",
		Effort:      iptr(8),
		Feeling:     iptr(6),
		Fatigue:     nil,
	}
	s := sessionToDomain(row)
	require.NotNil(t, s)
	assert.Equal(t, 4, *s.Effort)
	assert.Equal(t, 3, *s.Feeling)
	assert.Nil(t, s.Fatigue)

	back := sessionToRow(s)
	assert.Equal(t, 8, *back.Effort)
	assert.Equal(t, 6, *back.Feeling)
	assert.Nil(t, back.Fatigue)
}

func TestExerciseMapper_ZeroVersusAbsent(t *testing.T) {
	zero := 0
	row := exerciseRow{
		Name: "Développé couché",
		Kind: "strength",
		Force: cycleParamsRow{
			Sets:       iptr(5),
			RestSetSec: &zero, // recorded zero, not absent
		},
	}
	ex := exerciseToDomain(row)
	require.NotNil(t, ex)
	require.NotNil(t, ex.Force.RestSetSec)
	assert.Equal(t, 0, *ex.Force.RestSetSec)
	assert.Nil(t, ex.Force.Reps)

	// All three cycle groups are present even when the row left them empty.
	assert.Nil(t, ex.Endurance.Sets)
	assert.Nil(t, ex.Hypertrophie.Sets)

	back := exerciseToRow(ex)
	require.NotNil(t, back.Force.RestSetSec)
	assert.Equal(t, 0, *back.Force.RestSetSec)
	assert.Nil(t, back.Endurance.Sets)
}

func TestExerciseMapper_BlankName(t *testing.T) {
	assert.Nil(t, exerciseToDomain(exerciseRow{Name: " \t "}))
}

func TestStrengthSessionMapper_ItemsDefaultEmpty(t *testing.T) {
	s := strengthSessionToDomain(strengthSessionRow{ID: 1, Title: "Haut du corps", Cycle: "force"}, nil)
	require.NotNil(t, s)
	require.NotNil(t, s.Items)
	assert.Empty(t, s.Items)
}

func TestRunMapper_LogsDefaultEmpty(t *testing.T) {
	run := runToDomain(runRow{ID: 1, AthleteID: 3, Status: "in_progress"}, nil)
	require.NotNil(t, run)
	require.NotNil(t, run.Logs)
	assert.Empty(t, run.Logs)

	assert.Nil(t, runToDomain(runRow{ID: 1, Status: "in_progress"}, nil))
}

func TestAssignmentMapper_TargetRequired(t *testing.T) {
	assert.Nil(t, assignmentToDomain(assignmentRow{ID: 1, SessionID: 2}))

	a := assignmentToDomain(assignmentRow{ID: 1, SessionID: 2, GroupID: i64ptr(9), Status: "assigned"})
	require.NotNil(t, a)
	assert.Equal(t, int64(9), *a.GroupID)
	assert.Nil(t, a.UserID)
}

func TestNotificationMapper_RoundTrip(t *testing.T) {
	row := notificationRow{ID: 5, Title: "Nouvelle séance", Type: "assignment"}
	targets := []notificationTargetRow{
		{NotificationID: 5, UserID: i64ptr(1)},
		{NotificationID: 5, GroupID: i64ptr(2)},
	}
	n := notificationToDomain(row, targets)
	require.NotNil(t, n)
	require.Len(t, n.Targets, 2)
	assert.True(t, n.TargetsUser(1, nil))
	assert.True(t, n.TargetsUser(99, []int64{2}))
	assert.False(t, n.TargetsUser(99, []int64{3}))
}
