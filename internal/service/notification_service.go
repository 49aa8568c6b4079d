package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/selector"
)

// NotificationService defines operations for delivering and reading
// notifications.
type NotificationService interface {
	// SendMessage delivers a free-form coach message to the given targets.
	SendMessage(ctx context.Context, title, body string, targets []domain.NotificationTarget) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error

	// SendBirthdayWishes writes one birthday notification per user born on the
	// given day. The scheduler calls it once every morning.
	SendBirthdayWishes(ctx context.Context, day time.Time) (int, error)
}

type notificationService struct {
	sel    *selector.Selector
	errLog *ErrorLog
	log    *logrus.Entry
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(sel *selector.Selector, errLog *ErrorLog) NotificationService {
	return &notificationService{
		sel:    sel,
		errLog: errLog,
		log:    logrus.WithField("component", "notifications"),
	}
}

func (s *notificationService) SendMessage(ctx context.Context, title, body string, targets []domain.NotificationTarget) (int64, error) {
	if title == "" {
		return 0, errors.New("notification title is required")
	}
	if len(targets) == 0 {
		return 0, errors.New("notification needs at least one target")
	}
	for _, target := range targets {
		if (target.UserID == nil) == (target.GroupID == nil) {
			return 0, errors.New("notification target needs exactly one of user or group")
		}
	}

	notification := &domain.Notification{
		Title:     title,
		Body:      body,
		Type:      domain.NotifMessage,
		Targets:   targets,
		CreatedAt: time.Now(),
	}
	id, err := s.sel.Provider().Notifications().Create(ctx, notification)
	if err != nil {
		return 0, s.errLog.Wrap("notification send", err)
	}
	return id, nil
}

func (s *notificationService) ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	provider := s.sel.Provider()
	user, err := provider.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, s.errLog.Wrap("notification list", err)
	}
	notifications, err := provider.Notifications().ListForUser(ctx, userID, user.GroupIDs)
	if err != nil {
		return nil, s.errLog.Wrap("notification list", err)
	}
	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	notifications, err := s.ListForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	if err := s.sel.Provider().Notifications().MarkRead(ctx, id); err != nil {
		return s.errLog.Wrap("notification mark read", err)
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, id int64) error {
	if err := s.sel.Provider().Notifications().Delete(ctx, id); err != nil {
		return s.errLog.Wrap("notification delete", err)
	}
	return nil
}

func (s *notificationService) SendBirthdayWishes(ctx context.Context, day time.Time) (int, error) {
	provider := s.sel.Provider()
	users, err := provider.Users().BirthdaysOn(ctx, day.Format("01-02"))
	if err != nil {
		return 0, s.errLog.Wrap("birthday wishes", err)
	}

	sent := 0
	for i := range users {
		user := &users[i]
		id := user.ID
		notification := &domain.Notification{
			Title:     fmt.Sprintf("Joyeux anniversaire %s !", user.Name),
			Body:      "Toute l'équipe te souhaite un excellent anniversaire.",
			Type:      domain.NotifBirthday,
			Targets:   []domain.NotificationTarget{{UserID: &id}},
			CreatedAt: time.Now(),
		}
		if _, err := provider.Notifications().Create(ctx, notification); err != nil {
			s.log.Errorf("birthday wish for user %d: %s", user.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
