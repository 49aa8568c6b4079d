package localmirror

import (
	"context"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

// strengthSessionRepo persists session templates with their items embedded:
// the mirror keeps the in-memory shape, it does not split items into a
// separate collection the way the backend does.
type strengthSessionRepo struct {
	store *Store
}

func (r *strengthSessionRepo) Create(ctx context.Context, session *domain.StrengthSession) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if session.ID == 0 {
		session.ID = domain.NewID()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Items == nil {
		session.Items = []domain.StrengthItem{}
	}
	for i := range session.Items {
		if session.Items[i].ID == 0 {
			session.Items[i].ID = domain.NewID()
		}
		session.Items[i].SessionID = session.ID
	}

	sessions := load[domain.StrengthSession](r.store, KeyStrengthSessions)
	sessions = append(sessions, *session)
	save(r.store, KeyStrengthSessions, sessions)
	return session.ID, nil
}

func (r *strengthSessionRepo) GetByID(ctx context.Context, id int64) (*domain.StrengthSession, error) {
	for _, s := range load[domain.StrengthSession](r.store, KeyStrengthSessions) {
		if s.ID == id {
			if s.Items == nil {
				s.Items = []domain.StrengthItem{}
			}
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *strengthSessionRepo) List(ctx context.Context) ([]domain.StrengthSession, error) {
	sessions := load[domain.StrengthSession](r.store, KeyStrengthSessions)
	for i := range sessions {
		if sessions[i].Items == nil {
			sessions[i].Items = []domain.StrengthItem{}
		}
	}
	return sessions, nil
}

func (r *strengthSessionRepo) Update(ctx context.Context, session *domain.StrengthSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sessions := load[domain.StrengthSession](r.store, KeyStrengthSessions)
	for i := range sessions {
		if sessions[i].ID == session.ID {
			session.CreatedAt = sessions[i].CreatedAt
			session.UpdatedAt = time.Now().UTC()
			if session.Items == nil {
				session.Items = []domain.StrengthItem{}
			}
			for j := range session.Items {
				if session.Items[j].ID == 0 {
					session.Items[j].ID = domain.NewID()
				}
				session.Items[j].SessionID = session.ID
			}
			sessions[i] = *session
			save(r.store, KeyStrengthSessions, sessions)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *strengthSessionRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sessions := load[domain.StrengthSession](r.store, KeyStrengthSessions)
	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sessions) {
		return repository.ErrNotFound
	}
	save(r.store, KeyStrengthSessions, kept)
	return nil
}

func (r *strengthSessionRepo) RemoveExerciseItems(ctx context.Context, exerciseID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sessions := load[domain.StrengthSession](r.store, KeyStrengthSessions)
	changed := false
	for i := range sessions {
		kept := sessions[i].Items[:0]
		for _, item := range sessions[i].Items {
			if item.ExerciseID != exerciseID {
				kept = append(kept, item)
			}
		}
		if len(kept) != len(sessions[i].Items) {
			sessions[i].Items = kept
			changed = true
		}
	}
	if changed {
		save(r.store, KeyStrengthSessions, sessions)
	}
	return nil
}

// runRepo persists runs with their set logs embedded, same reasoning as
// strengthSessionRepo.
type runRepo struct {
	store *Store
}

func (r *runRepo) Create(ctx context.Context, run *domain.StrengthRun) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if run.ID == 0 {
		run.ID = domain.NewID()
	}
	now := time.Now().UTC()
	run.StartedAt = now
	run.UpdatedAt = now
	if run.Logs == nil {
		run.Logs = []domain.SetLog{}
	}

	runs := load[domain.StrengthRun](r.store, KeyRuns)
	runs = append(runs, *run)
	save(r.store, KeyRuns, runs)
	return run.ID, nil
}

func (r *runRepo) GetByID(ctx context.Context, id int64) (*domain.StrengthRun, error) {
	for _, run := range load[domain.StrengthRun](r.store, KeyRuns) {
		if run.ID == id {
			if run.Logs == nil {
				run.Logs = []domain.SetLog{}
			}
			return &run, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *runRepo) ListByAthlete(ctx context.Context, athleteID int64) ([]domain.StrengthRun, error) {
	var out []domain.StrengthRun
	for _, run := range load[domain.StrengthRun](r.store, KeyRuns) {
		if run.AthleteID == athleteID {
			if run.Logs == nil {
				run.Logs = []domain.SetLog{}
			}
			out = append(out, run)
		}
	}
	return out, nil
}

func (r *runRepo) Update(ctx context.Context, run *domain.StrengthRun) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	runs := load[domain.StrengthRun](r.store, KeyRuns)
	for i := range runs {
		if runs[i].ID == run.ID {
			run.StartedAt = runs[i].StartedAt
			run.UpdatedAt = time.Now().UTC()
			if run.Logs == nil {
				run.Logs = runs[i].Logs
			}
			runs[i] = *run
			save(r.store, KeyRuns, runs)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *runRepo) AppendLog(ctx context.Context, log *domain.SetLog) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if log.ID == 0 {
		log.ID = domain.NewID()
	}
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now().UTC()
	}

	runs := load[domain.StrengthRun](r.store, KeyRuns)
	for i := range runs {
		if runs[i].ID == log.RunID {
			runs[i].Logs = append(runs[i].Logs, *log)
			runs[i].UpdatedAt = time.Now().UTC()
			save(r.store, KeyRuns, runs)
			return log.ID, nil
		}
	}
	return 0, repository.ErrNotFound
}

func (r *runRepo) ReplaceLogs(ctx context.Context, runID int64, logs []domain.SetLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	runs := load[domain.StrengthRun](r.store, KeyRuns)
	for i := range runs {
		if runs[i].ID == runID {
			if logs == nil {
				logs = []domain.SetLog{}
			}
			for j := range logs {
				if logs[j].ID == 0 {
					logs[j].ID = domain.NewID()
				}
				logs[j].RunID = runID
			}
			runs[i].Logs = logs
			runs[i].UpdatedAt = time.Now().UTC()
			save(r.store, KeyRuns, runs)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *runRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	runs := load[domain.StrengthRun](r.store, KeyRuns)
	kept := runs[:0]
	for _, run := range runs {
		if run.ID != id {
			kept = append(kept, run)
		}
	}
	if len(kept) == len(runs) {
		return repository.ErrNotFound
	}
	save(r.store, KeyRuns, kept)
	return nil
}
