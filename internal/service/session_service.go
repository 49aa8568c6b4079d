package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
	"swimtrack/training-tracker/internal/repository/selector"
)

// SessionService defines operations on swim log entries.
type SessionService interface {
	// Sync creates the session when it has no id yet, updates it otherwise.
	Sync(ctx context.Context, session *domain.TrainingSession) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TrainingSession, error)
	List(ctx context.Context, filter repository.SessionFilter) ([]domain.TrainingSession, error)
	Delete(ctx context.Context, id int64) error
}

type sessionService struct {
	sel    *selector.Selector
	errLog *ErrorLog
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(sel *selector.Selector, errLog *ErrorLog) SessionService {
	return &sessionService{sel: sel, errLog: errLog}
}

func (s *sessionService) Sync(ctx context.Context, session *domain.TrainingSession) (int64, error) {
	if err := validateSession(session); err != nil {
		return 0, err
	}

	now := time.Now()
	session.UpdatedAt = now
	repo := s.sel.Provider().Sessions()

	if session.ID == 0 {
		session.CreatedAt = now
		id, err := repo.Create(ctx, session)
		if err != nil {
			return 0, s.errLog.Wrap("session create", err)
		}
		return id, nil
	}

	err := repo.Update(ctx, session)
	if errors.Is(err, repository.ErrNotFound) {
		// the entry was written on another device and never synced here
		session.CreatedAt = now
		id, createErr := repo.Create(ctx, session)
		if createErr != nil {
			return 0, s.errLog.Wrap("session create", createErr)
		}
		return id, nil
	}
	if err != nil {
		return 0, s.errLog.Wrap("session update", err)
	}
	return session.ID, nil
}

func (s *sessionService) GetByID(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	session, err := s.sel.Provider().Sessions().GetByID(ctx, id)
	if err != nil {
		return nil, s.errLog.Wrap("session get", err)
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context, filter repository.SessionFilter) ([]domain.TrainingSession, error) {
	sessions, err := s.sel.Provider().Sessions().List(ctx, filter)
	if err != nil {
		return nil, s.errLog.Wrap("session list", err)
	}
	return sessions, nil
}

func (s *sessionService) Delete(ctx context.Context, id int64) error {
	if err := s.sel.Provider().Sessions().Delete(ctx, id); err != nil {
		return s.errLog.Wrap("session delete", err)
	}
	return nil
}

func validateSession(session *domain.TrainingSession) error {
	if session.Date == "" {
		return errors.New("session date is required")
	}
	if _, err := time.Parse("2006-01-02", session.Date); err != nil {
		return fmt.Errorf("invalid session date %q", session.Date)
	}
	if session.Slot != domain.SlotMorning && session.Slot != domain.SlotEvening {
		return fmt.Errorf("unknown time slot %q", session.Slot)
	}
	if session.AthleteID == nil && session.AthleteName == "" {
		return errors.New("session needs an athlete id or name")
	}
	if session.Effort == nil || session.Feeling == nil {
		return errors.New("effort and feeling ratings are required")
	}
	for name, rating := range map[string]*int{
		"effort":      session.Effort,
		"feeling":     session.Feeling,
		"performance": session.Performance,
		"engagement":  session.Engagement,
		"fatigue":     session.Fatigue,
	} {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return fmt.Errorf("%s rating %d out of 1-5 range", name, *rating)
		}
	}
	if session.Distance != nil && *session.Distance < 0 {
		return errors.New("distance must not be negative")
	}
	if session.Duration != nil && *session.Duration < 0 {
		return errors.New("duration must not be negative")
	}
	return nil
}
