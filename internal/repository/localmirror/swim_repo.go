package localmirror

import (
	"context"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

type swimSessionRepo struct {
	store *Store
}

func (r *swimSessionRepo) Create(ctx context.Context, session *domain.SwimSession) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if session.ID == 0 {
		session.ID = domain.NewID()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Items == nil {
		session.Items = []domain.SwimItem{}
	}
	for i := range session.Items {
		if session.Items[i].ID == 0 {
			session.Items[i].ID = domain.NewID()
		}
		session.Items[i].SessionID = session.ID
	}

	sessions := load[domain.SwimSession](r.store, KeySwimSessions)
	sessions = append(sessions, *session)
	save(r.store, KeySwimSessions, sessions)
	return session.ID, nil
}

func (r *swimSessionRepo) GetByID(ctx context.Context, id int64) (*domain.SwimSession, error) {
	for _, s := range load[domain.SwimSession](r.store, KeySwimSessions) {
		if s.ID == id {
			if s.Items == nil {
				s.Items = []domain.SwimItem{}
			}
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *swimSessionRepo) List(ctx context.Context, includeArchived bool) ([]domain.SwimSession, error) {
	var out []domain.SwimSession
	for _, s := range load[domain.SwimSession](r.store, KeySwimSessions) {
		if s.Archived && !includeArchived {
			continue
		}
		if s.Items == nil {
			s.Items = []domain.SwimItem{}
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *swimSessionRepo) Update(ctx context.Context, session *domain.SwimSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sessions := load[domain.SwimSession](r.store, KeySwimSessions)
	for i := range sessions {
		if sessions[i].ID == session.ID {
			session.CreatedAt = sessions[i].CreatedAt
			session.UpdatedAt = time.Now().UTC()
			if session.Items == nil {
				session.Items = []domain.SwimItem{}
			}
			for j := range session.Items {
				if session.Items[j].ID == 0 {
					session.Items[j].ID = domain.NewID()
				}
				session.Items[j].SessionID = session.ID
			}
			sessions[i] = *session
			save(r.store, KeySwimSessions, sessions)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *swimSessionRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sessions := load[domain.SwimSession](r.store, KeySwimSessions)
	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sessions) {
		return repository.ErrNotFound
	}
	save(r.store, KeySwimSessions, kept)
	return nil
}
