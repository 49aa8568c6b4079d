package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
)

func TestAssignToGroupsFansOut(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewAssignmentService(sel, NewErrorLog())

	result, err := svc.AssignToGroups(ctx, &domain.Assignment{
		SessionID: 11,
		Kind:      domain.KindSwim,
		Date:      "2024-06-01",
		Slot:      domain.SlotMorning,
	}, []int64{100, 200})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, result.Entries, 2)
	assert.NotZero(t, result.Entries[0].AssignmentID)
	assert.NotEqual(t, result.Entries[0].AssignmentID, result.Entries[1].AssignmentID)

	// one assignment row per group
	forGroup100, err := sel.Provider().Assignments().ListForTarget(ctx, 0, []int64{100})
	require.NoError(t, err)
	require.Len(t, forGroup100, 1)
	assert.Equal(t, int64(100), *forGroup100[0].GroupID)
	assert.Nil(t, forGroup100[0].UserID)
	assert.Equal(t, domain.StatusAssigned, forGroup100[0].Status)

	// and one notification per group
	notifs, err := sel.Provider().Notifications().ListForUser(ctx, 0, []int64{100})
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, domain.NotifAssignment, notifs[0].Type)

	notifs, err = sel.Provider().Notifications().ListForUser(ctx, 0, []int64{100, 200})
	require.NoError(t, err)
	assert.Len(t, notifs, 2)
}

func TestAssignToUserNotifies(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewAssignmentService(sel, NewErrorLog())

	athleteID := int64(7)
	id, err := svc.AssignToUser(ctx, &domain.Assignment{
		SessionID: 11,
		Kind:      domain.KindStrengthBuild,
		UserID:    &athleteID,
		Date:      "2024-06-01",
		Slot:      domain.SlotEvening,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	notifs, err := sel.Provider().Notifications().ListForUser(ctx, athleteID, nil)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Contains(t, notifs[0].Title, "musculation")
}

func TestAssignValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewAssignmentService(newLocalSelector(t), NewErrorLog())
	athleteID := int64(7)

	cases := []domain.Assignment{
		{Kind: domain.KindSwim, UserID: &athleteID, Date: "2024-06-01"},               // no session
		{SessionID: 1, Kind: "yoga", UserID: &athleteID, Date: "2024-06-01"},          // bad kind
		{SessionID: 1, Kind: domain.KindSwim, UserID: &athleteID},                     // no date
		{SessionID: 1, Kind: domain.KindSwim, UserID: &athleteID, Date: "01/06/2024"}, // bad date
		{SessionID: 1, Kind: domain.KindSwim, Date: "2024-06-01"},                     // no target
	}
	for _, assignment := range cases {
		a := assignment
		_, err := svc.AssignToUser(ctx, &a)
		assert.Error(t, err)
	}

	_, err := svc.AssignToGroups(ctx, &domain.Assignment{SessionID: 1, Kind: domain.KindSwim, Date: "2024-06-01"}, nil)
	assert.Error(t, err)
}

func TestListForUserSeesGroupAssignments(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewAssignmentService(sel, NewErrorLog())

	userID, err := sel.Provider().Users().Create(ctx, &domain.User{
		Name:     "Léa",
		Email:    "lea@club.fr",
		Role:     domain.RoleAthlete,
		GroupIDs: []int64{100},
	})
	require.NoError(t, err)

	_, err = svc.AssignToGroups(ctx, &domain.Assignment{
		SessionID: 11,
		Kind:      domain.KindSwim,
		Date:      "2024-06-01",
		Slot:      domain.SlotMorning,
	}, []int64{100, 999})
	require.NoError(t, err)

	assignments, err := svc.ListForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, int64(100), *assignments[0].GroupID)
}
