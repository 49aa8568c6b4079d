package localmirror

import (
	"context"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

type timesheetRepo struct {
	store *Store
}

func (r *timesheetRepo) CreateShift(ctx context.Context, shift *domain.TimesheetShift) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if shift.ID == 0 {
		shift.ID = domain.NewID()
	}
	now := time.Now().UTC()
	shift.CreatedAt = now
	shift.UpdatedAt = now

	shifts := load[domain.TimesheetShift](r.store, KeyShifts)
	shifts = append(shifts, *shift)
	save(r.store, KeyShifts, shifts)
	return shift.ID, nil
}

func (r *timesheetRepo) ListShifts(ctx context.Context, coachID int64) ([]domain.TimesheetShift, error) {
	var out []domain.TimesheetShift
	for _, s := range load[domain.TimesheetShift](r.store, KeyShifts) {
		if s.CoachID == coachID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *timesheetRepo) UpdateShift(ctx context.Context, shift *domain.TimesheetShift) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	shifts := load[domain.TimesheetShift](r.store, KeyShifts)
	for i := range shifts {
		if shifts[i].ID == shift.ID {
			shift.CreatedAt = shifts[i].CreatedAt
			shift.UpdatedAt = time.Now().UTC()
			shifts[i] = *shift
			save(r.store, KeyShifts, shifts)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *timesheetRepo) DeleteShift(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	shifts := load[domain.TimesheetShift](r.store, KeyShifts)
	kept := shifts[:0]
	for _, s := range shifts {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(shifts) {
		return repository.ErrNotFound
	}
	save(r.store, KeyShifts, kept)
	return nil
}

func (r *timesheetRepo) CreateLocation(ctx context.Context, location *domain.TimesheetLocation) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if location.ID == 0 {
		location.ID = domain.NewID()
	}
	location.CreatedAt = time.Now().UTC()

	locations := load[domain.TimesheetLocation](r.store, KeyLocations)
	locations = append(locations, *location)
	save(r.store, KeyLocations, locations)
	return location.ID, nil
}

func (r *timesheetRepo) ListLocations(ctx context.Context) ([]domain.TimesheetLocation, error) {
	return load[domain.TimesheetLocation](r.store, KeyLocations), nil
}
