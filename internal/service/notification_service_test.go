package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/selector"
)

func seedAthlete(t *testing.T, sel *selector.Selector, name, email, birthday string, groups ...int64) int64 {
	t.Helper()
	id, err := sel.Provider().Users().Create(context.Background(), &domain.User{
		Name:     name,
		Email:    email,
		Role:     domain.RoleAthlete,
		GroupIDs: groups,
		Birthday: birthday,
	})
	require.NoError(t, err)
	return id
}

func TestSendMessageAndReadState(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewNotificationService(sel, NewErrorLog())

	userID := seedAthlete(t, sel, "Léa", "lea@club.fr", "", 100)

	_, err := svc.SendMessage(ctx, "Créneau annulé", "Pas d'entraînement jeudi.", []domain.NotificationTarget{{UserID: &userID}})
	require.NoError(t, err)

	groupID := int64(100)
	_, err = svc.SendMessage(ctx, "Stage d'été", "", []domain.NotificationTarget{{GroupID: &groupID}})
	require.NoError(t, err)

	notifications, err := svc.ListForUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, notifications, 2, "direct and group messages both reach the user")

	unread, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, svc.MarkRead(ctx, notifications[0].ID))
	unread, err = svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestSendMessageValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(newLocalSelector(t), NewErrorLog())
	userID := int64(7)
	groupID := int64(100)

	_, err := svc.SendMessage(ctx, "", "body", []domain.NotificationTarget{{UserID: &userID}})
	assert.Error(t, err)

	_, err = svc.SendMessage(ctx, "Titre", "", nil)
	assert.Error(t, err)

	// a target with both or neither field set is malformed
	_, err = svc.SendMessage(ctx, "Titre", "", []domain.NotificationTarget{{UserID: &userID, GroupID: &groupID}})
	assert.Error(t, err)
	_, err = svc.SendMessage(ctx, "Titre", "", []domain.NotificationTarget{{}})
	assert.Error(t, err)
}

func TestSendBirthdayWishes(t *testing.T) {
	ctx := context.Background()
	sel := newLocalSelector(t)
	svc := NewNotificationService(sel, NewErrorLog())

	leaID := seedAthlete(t, sel, "Léa", "lea@club.fr", "2008-03-10")
	brunoID := seedAthlete(t, sel, "Bruno", "bruno@club.fr", "2007-11-22")
	// same day, different year still matches
	tomID := seedAthlete(t, sel, "Tom", "tom@club.fr", "2010-03-10")

	day, err := time.Parse("2006-01-02", "2024-03-10")
	require.NoError(t, err)
	sent, err := svc.SendBirthdayWishes(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	for _, id := range []int64{leaID, tomID} {
		notifications, err := svc.ListForUser(ctx, id)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, domain.NotifBirthday, notifications[0].Type)
	}

	brunoNotifs, err := svc.ListForUser(ctx, brunoID)
	require.NoError(t, err)
	assert.Empty(t, brunoNotifs)
}
