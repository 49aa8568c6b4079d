package localmirror

import (
	"context"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

// sessionRepo implements repository.SessionRepository over the mirror store.
// Ratings stay on the 1-5 scale here: the mirror persists the in-memory
// shape verbatim, no backend scale conversion applies.
type sessionRepo struct {
	store *Store
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.TrainingSession) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if session.ID == 0 {
		session.ID = domain.NewID()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	sessions := load[domain.TrainingSession](r.store, KeySessions)
	sessions = append(sessions, *session)
	save(r.store, KeySessions, sessions)
	return session.ID, nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id int64) (*domain.TrainingSession, error) {
	for _, s := range load[domain.TrainingSession](r.store, KeySessions) {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *sessionRepo) List(ctx context.Context, filter repository.SessionFilter) ([]domain.TrainingSession, error) {
	var out []domain.TrainingSession
	for _, s := range load[domain.TrainingSession](r.store, KeySessions) {
		if !matchSession(s, filter) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func matchSession(s domain.TrainingSession, f repository.SessionFilter) bool {
	if f.AthleteID != nil && (s.AthleteID == nil || *s.AthleteID != *f.AthleteID) {
		return false
	}
	if f.AthleteName != "" && s.AthleteName != f.AthleteName {
		return false
	}
	if f.DateFrom != "" && s.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && s.Date > f.DateTo {
		return false
	}
	return true
}

func (r *sessionRepo) Update(ctx context.Context, session *domain.TrainingSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sessions := load[domain.TrainingSession](r.store, KeySessions)
	for i := range sessions {
		if sessions[i].ID == session.ID {
			session.CreatedAt = sessions[i].CreatedAt
			session.UpdatedAt = time.Now().UTC()
			sessions[i] = *session
			save(r.store, KeySessions, sessions)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *sessionRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sessions := load[domain.TrainingSession](r.store, KeySessions)
	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sessions) {
		return repository.ErrNotFound
	}
	save(r.store, KeySessions, kept)
	return nil
}
