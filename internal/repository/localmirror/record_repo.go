package localmirror

import (
	"context"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

// oneRmRepo keys records by the (athlete, exercise) pair; Upsert replaces
// in place rather than appending a history.
type oneRmRepo struct {
	store *Store
}

func (r *oneRmRepo) Get(ctx context.Context, athleteID, exerciseID int64) (*domain.OneRmRecord, error) {
	for _, rec := range load[domain.OneRmRecord](r.store, KeyOneRm) {
		if rec.AthleteID == athleteID && rec.ExerciseID == exerciseID {
			return &rec, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *oneRmRepo) ListByAthlete(ctx context.Context, athleteID int64) ([]domain.OneRmRecord, error) {
	var out []domain.OneRmRecord
	for _, rec := range load[domain.OneRmRecord](r.store, KeyOneRm) {
		if rec.AthleteID == athleteID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *oneRmRepo) Upsert(ctx context.Context, record *domain.OneRmRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	records := load[domain.OneRmRecord](r.store, KeyOneRm)
	for i := range records {
		if records[i].AthleteID == record.AthleteID && records[i].ExerciseID == record.ExerciseID {
			record.ID = records[i].ID
			records[i] = *record
			save(r.store, KeyOneRm, records)
			return nil
		}
	}
	if record.ID == 0 {
		record.ID = domain.NewID()
	}
	records = append(records, *record)
	save(r.store, KeyOneRm, records)
	return nil
}

type recordRepo struct {
	store *Store
}

// UpsertSwimRecord keys on (athlete, event, pool).
func (r *recordRepo) UpsertSwimRecord(ctx context.Context, record *domain.SwimRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	records := load[domain.SwimRecord](r.store, KeySwimRecords)
	for i := range records {
		if records[i].AthleteID == record.AthleteID &&
			records[i].Event == record.Event &&
			records[i].Pool == record.Pool {
			record.ID = records[i].ID
			records[i] = *record
			save(r.store, KeySwimRecords, records)
			return nil
		}
	}
	if record.ID == 0 {
		record.ID = domain.NewID()
	}
	records = append(records, *record)
	save(r.store, KeySwimRecords, records)
	return nil
}

func (r *recordRepo) ListSwimRecords(ctx context.Context, athleteID int64) ([]domain.SwimRecord, error) {
	var out []domain.SwimRecord
	for _, rec := range load[domain.SwimRecord](r.store, KeySwimRecords) {
		if rec.AthleteID == athleteID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *recordRepo) ListClubRecords(ctx context.Context) ([]domain.ClubRecord, error) {
	return load[domain.ClubRecord](r.store, KeyClubRecords), nil
}

func (r *recordRepo) ReplaceClubRecords(ctx context.Context, records []domain.ClubRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if records == nil {
		records = []domain.ClubRecord{}
	}
	for i := range records {
		if records[i].ID == 0 {
			records[i].ID = domain.NewID()
		}
	}
	save(r.store, KeyClubRecords, records)
	return nil
}
