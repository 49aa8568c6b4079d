package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
	"swimtrack/training-tracker/internal/repository/selector"
)

const hallOfFameSize = 5

// RecordsService defines operations on swim records, club records and the
// hall of fame rankings.
type RecordsService interface {
	// SaveSwimRecord stores a time only when it beats (is lower than) the
	// athlete's previous best for the event and pool. Returns true when the
	// record was written.
	SaveSwimRecord(ctx context.Context, record *domain.SwimRecord) (bool, error)
	ListSwimRecords(ctx context.Context, athleteID int64) ([]domain.SwimRecord, error)
	ListClubRecords(ctx context.Context) ([]domain.ClubRecord, error)
	ReplaceClubRecords(ctx context.Context, records []domain.ClubRecord) error
	HallOfFame(ctx context.Context) (*domain.HallOfFame, error)
}

type recordsService struct {
	sel    *selector.Selector
	errLog *ErrorLog
}

// NewRecordsService creates a new instance of RecordsService.
func NewRecordsService(sel *selector.Selector, errLog *ErrorLog) RecordsService {
	return &recordsService{sel: sel, errLog: errLog}
}

func (s *recordsService) SaveSwimRecord(ctx context.Context, record *domain.SwimRecord) (bool, error) {
	if record.Event == "" || record.Pool == "" {
		return false, errors.New("swim record needs an event and a pool length")
	}
	if record.Seconds <= 0 {
		return false, errors.New("swim record time must be positive")
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now()
	}

	repo := s.sel.Provider().Records()
	existing, err := repo.ListSwimRecords(ctx, record.AthleteID)
	if err != nil {
		return false, s.errLog.Wrap("swim record save", err)
	}
	for _, prev := range existing {
		if prev.Event == record.Event && prev.Pool == record.Pool && prev.Seconds <= record.Seconds {
			return false, nil
		}
	}
	if err := repo.UpsertSwimRecord(ctx, record); err != nil {
		return false, s.errLog.Wrap("swim record save", err)
	}
	return true, nil
}

func (s *recordsService) ListSwimRecords(ctx context.Context, athleteID int64) ([]domain.SwimRecord, error) {
	records, err := s.sel.Provider().Records().ListSwimRecords(ctx, athleteID)
	if err != nil {
		return nil, s.errLog.Wrap("swim record list", err)
	}
	return records, nil
}

func (s *recordsService) ListClubRecords(ctx context.Context) ([]domain.ClubRecord, error) {
	records, err := s.sel.Provider().Records().ListClubRecords(ctx)
	if err != nil {
		return nil, s.errLog.Wrap("club record list", err)
	}
	return records, nil
}

func (s *recordsService) ReplaceClubRecords(ctx context.Context, records []domain.ClubRecord) error {
	if err := s.sel.Provider().Records().ReplaceClubRecords(ctx, records); err != nil {
		return s.errLog.Wrap("club record replace", err)
	}
	return nil
}

// athleteTotals accumulates one athlete's metrics across both disciplines.
type athleteTotals struct {
	entry           domain.HallOfFameEntry
	distance        float64
	effortSum       float64
	effortCount     int
	engagementSum   float64
	engagementCount int
	volume          float64
	tonnage         float64
	maxWeight       float64
}

// HallOfFame ranks athletes on swim volume, mean ratings and strength work.
// Entries with a zero metric are skipped; each board keeps the top five,
// ties resolved by first appearance.
func (s *recordsService) HallOfFame(ctx context.Context) (*domain.HallOfFame, error) {
	provider := s.sel.Provider()
	sessions, err := provider.Sessions().List(ctx, repository.SessionFilter{})
	if err != nil {
		return nil, s.errLog.Wrap("hall of fame", err)
	}
	users, err := provider.Users().List(ctx)
	if err != nil {
		return nil, s.errLog.Wrap("hall of fame", err)
	}

	totals := make(map[string]*athleteTotals)
	var order []string

	keyFor := func(athleteID *int64, name string) string {
		if athleteID != nil {
			return "id:" + strconv.FormatInt(*athleteID, 10)
		}
		return "name:" + name
	}
	get := func(athleteID *int64, name string) *athleteTotals {
		key := keyFor(athleteID, name)
		t, ok := totals[key]
		if !ok {
			t = &athleteTotals{entry: domain.HallOfFameEntry{AthleteID: athleteID, AthleteName: name}}
			totals[key] = t
			order = append(order, key)
		}
		return t
	}

	for i := range sessions {
		session := &sessions[i]
		t := get(session.AthleteID, session.AthleteName)
		if session.Distance != nil {
			t.distance += float64(*session.Distance)
		}
		if session.Effort != nil {
			t.effortSum += float64(*session.Effort)
			t.effortCount++
		}
		if session.Engagement != nil {
			t.engagementSum += float64(*session.Engagement)
			t.engagementCount++
		}
	}

	for i := range users {
		user := &users[i]
		runs, err := provider.Runs().ListByAthlete(ctx, user.ID)
		if err != nil {
			return nil, s.errLog.Wrap("hall of fame", err)
		}
		if len(runs) == 0 {
			continue
		}
		id := user.ID
		t := get(&id, user.Name)
		for _, run := range runs {
			for _, log := range run.Logs {
				t.volume += float64(log.Reps)
				t.tonnage += float64(log.Reps) * log.Weight
				if log.Weight > t.maxWeight {
					t.maxWeight = log.Weight
				}
			}
		}
	}

	board := func(metric func(*athleteTotals) float64) []domain.HallOfFameEntry {
		var entries []domain.HallOfFameEntry
		for _, key := range order {
			t := totals[key]
			value := metric(t)
			if value <= 0 {
				continue
			}
			entry := t.entry
			entry.Value = value
			entries = append(entries, entry)
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Value > entries[j].Value
		})
		if len(entries) > hallOfFameSize {
			entries = entries[:hallOfFameSize]
		}
		return entries
	}

	return &domain.HallOfFame{
		Distance: board(func(t *athleteTotals) float64 { return t.distance }),
		Effort: board(func(t *athleteTotals) float64 {
			if t.effortCount == 0 {
				return 0
			}
			return t.effortSum / float64(t.effortCount)
		}),
		Engagement: board(func(t *athleteTotals) float64 {
			if t.engagementCount == 0 {
				return 0
			}
			return t.engagementSum / float64(t.engagementCount)
		}),
		Volume:    board(func(t *athleteTotals) float64 { return t.volume }),
		Tonnage:   board(func(t *athleteTotals) float64 { return t.tonnage }),
		MaxWeight: board(func(t *athleteTotals) float64 { return t.maxWeight }),
	}, nil
}
