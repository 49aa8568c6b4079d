package localmirror

import (
	"context"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

type exerciseRepo struct {
	store *Store
}

func (r *exerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if exercise.ID == 0 {
		exercise.ID = domain.NewID()
	}
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	exercises := load[domain.Exercise](r.store, KeyExercises)
	exercises = append(exercises, *exercise)
	save(r.store, KeyExercises, exercises)
	return exercise.ID, nil
}

func (r *exerciseRepo) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	for _, e := range load[domain.Exercise](r.store, KeyExercises) {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *exerciseRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	return load[domain.Exercise](r.store, KeyExercises), nil
}

func (r *exerciseRepo) Update(ctx context.Context, exercise *domain.Exercise) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	exercises := load[domain.Exercise](r.store, KeyExercises)
	for i := range exercises {
		if exercises[i].ID == exercise.ID {
			exercise.CreatedAt = exercises[i].CreatedAt
			exercise.UpdatedAt = time.Now().UTC()
			exercises[i] = *exercise
			save(r.store, KeyExercises, exercises)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *exerciseRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	exercises := load[domain.Exercise](r.store, KeyExercises)
	kept := exercises[:0]
	for _, e := range exercises {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(exercises) {
		return repository.ErrNotFound
	}
	save(r.store, KeyExercises, kept)
	return nil
}
