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

// ErrRunFinished rejects writes against a run already completed or abandoned.
var ErrRunFinished = errors.New("run is already finished")

// StrengthService defines operations on strength session templates, tracked
// runs and one-rep-max records.
type StrengthService interface {
	CreateSession(ctx context.Context, session *domain.StrengthSession) (int64, error)
	GetSession(ctx context.Context, id int64) (*domain.StrengthSession, error)
	ListSessions(ctx context.Context) ([]domain.StrengthSession, error)
	UpdateSession(ctx context.Context, session *domain.StrengthSession) error
	DeleteSession(ctx context.Context, id int64) error

	StartRun(ctx context.Context, athleteID, sessionID int64, assignmentID *int64) (*domain.StrengthRun, error)
	GetRun(ctx context.Context, id int64) (*domain.StrengthRun, error)
	ListRuns(ctx context.Context, athleteID int64) ([]domain.StrengthRun, error)
	LogSet(ctx context.Context, runID int64, log *domain.SetLog) (int64, error)
	UpdateProgress(ctx context.Context, runID int64, progress int) error
	SaveRun(ctx context.Context, runID int64, logs []domain.SetLog) error
	AbandonRun(ctx context.Context, runID int64) error
	DeleteRun(ctx context.Context, runID int64) error

	RunHistory(ctx context.Context, athleteID int64, period HistoryPeriod, bounds HistoryRange, desc bool) ([]HistoryBucket, error)
	OneRmForAthlete(ctx context.Context, athleteID int64) ([]domain.OneRmRecord, error)
}

type strengthService struct {
	sel    *selector.Selector
	errLog *ErrorLog
}

// NewStrengthService creates a new instance of StrengthService.
func NewStrengthService(sel *selector.Selector, errLog *ErrorLog) StrengthService {
	return &strengthService{sel: sel, errLog: errLog}
}

func (s *strengthService) CreateSession(ctx context.Context, session *domain.StrengthSession) (int64, error) {
	if session.Title == "" {
		return 0, errors.New("session title is required")
	}
	if !session.Cycle.Valid() {
		return 0, fmt.Errorf("unknown cycle %q", session.Cycle)
	}
	if err := ValidateStrengthItems(session.Items); err != nil {
		return 0, err
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	id, err := s.sel.Provider().StrengthSessions().Create(ctx, session)
	if err != nil {
		return 0, s.errLog.Wrap("strength session create", err)
	}
	return id, nil
}

func (s *strengthService) GetSession(ctx context.Context, id int64) (*domain.StrengthSession, error) {
	session, err := s.sel.Provider().StrengthSessions().GetByID(ctx, id)
	if err != nil {
		return nil, s.errLog.Wrap("strength session get", err)
	}
	session.Items = OrderStrengthItems(session.Items)
	return session, nil
}

func (s *strengthService) ListSessions(ctx context.Context) ([]domain.StrengthSession, error) {
	sessions, err := s.sel.Provider().StrengthSessions().List(ctx)
	if err != nil {
		return nil, s.errLog.Wrap("strength session list", err)
	}
	for i := range sessions {
		sessions[i].Items = OrderStrengthItems(sessions[i].Items)
	}
	return sessions, nil
}

func (s *strengthService) UpdateSession(ctx context.Context, session *domain.StrengthSession) error {
	if !session.Cycle.Valid() {
		return fmt.Errorf("unknown cycle %q", session.Cycle)
	}
	if err := ValidateStrengthItems(session.Items); err != nil {
		return err
	}
	session.UpdatedAt = time.Now()
	if err := s.sel.Provider().StrengthSessions().Update(ctx, session); err != nil {
		return s.errLog.Wrap("strength session update", err)
	}
	return nil
}

func (s *strengthService) DeleteSession(ctx context.Context, id int64) error {
	if err := s.sel.Provider().StrengthSessions().Delete(ctx, id); err != nil {
		return s.errLog.Wrap("strength session delete", err)
	}
	return nil
}

// StartRun opens a tracked execution of a session. When the run originates
// from an assignment, the assignment immediately moves to in-progress.
func (s *strengthService) StartRun(ctx context.Context, athleteID, sessionID int64, assignmentID *int64) (*domain.StrengthRun, error) {
	provider := s.sel.Provider()
	if _, err := provider.StrengthSessions().GetByID(ctx, sessionID); err != nil {
		return nil, s.errLog.Wrap("strength run start", err)
	}

	now := time.Now()
	run := &domain.StrengthRun{
		SessionID:    sessionID,
		AssignmentID: assignmentID,
		AthleteID:    athleteID,
		Status:       domain.RunInProgress,
		Logs:         []domain.SetLog{},
		StartedAt:    now,
		UpdatedAt:    now,
	}
	id, err := provider.Runs().Create(ctx, run)
	if err != nil {
		return nil, s.errLog.Wrap("strength run start", err)
	}
	run.ID = id

	if assignmentID != nil {
		if err := s.setAssignmentStatus(ctx, *assignmentID, domain.StatusInProgress); err != nil {
			return nil, err
		}
	}
	return run, nil
}

func (s *strengthService) GetRun(ctx context.Context, id int64) (*domain.StrengthRun, error) {
	run, err := s.sel.Provider().Runs().GetByID(ctx, id)
	if err != nil {
		return nil, s.errLog.Wrap("strength run get", err)
	}
	return run, nil
}

func (s *strengthService) ListRuns(ctx context.Context, athleteID int64) ([]domain.StrengthRun, error) {
	runs, err := s.sel.Provider().Runs().ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, s.errLog.Wrap("strength run list", err)
	}
	return runs, nil
}

// LogSet appends one performed set to an in-progress run and refreshes the
// athlete's one-rep max for the exercise when the set beats the stored value.
func (s *strengthService) LogSet(ctx context.Context, runID int64, log *domain.SetLog) (int64, error) {
	provider := s.sel.Provider()
	run, err := provider.Runs().GetByID(ctx, runID)
	if err != nil {
		return 0, s.errLog.Wrap("set log", err)
	}
	if run.Status.Terminal() {
		return 0, ErrRunFinished
	}

	log.RunID = runID
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}
	id, err := provider.Runs().AppendLog(ctx, log)
	if err != nil {
		return 0, s.errLog.Wrap("set log", err)
	}

	if err := s.maybeRaiseOneRm(ctx, run.AthleteID, log); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *strengthService) UpdateProgress(ctx context.Context, runID int64, progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress %d out of range", progress)
	}
	provider := s.sel.Provider()
	run, err := provider.Runs().GetByID(ctx, runID)
	if err != nil {
		return s.errLog.Wrap("run progress", err)
	}
	if run.Status.Terminal() {
		return ErrRunFinished
	}
	run.Progress = progress
	run.UpdatedAt = time.Now()
	if err := provider.Runs().Update(ctx, run); err != nil {
		return s.errLog.Wrap("run progress", err)
	}
	return nil
}

// SaveRun finalizes a run: the submitted logs replace whatever was recorded
// incrementally, the run becomes completed, the linked assignment follows,
// and every best set raises its one-rep max where applicable.
func (s *strengthService) SaveRun(ctx context.Context, runID int64, logs []domain.SetLog) error {
	provider := s.sel.Provider()
	run, err := provider.Runs().GetByID(ctx, runID)
	if err != nil {
		return s.errLog.Wrap("run save", err)
	}
	if run.Status.Terminal() {
		return ErrRunFinished
	}

	now := time.Now()
	for i := range logs {
		logs[i].RunID = runID
		if logs[i].LoggedAt.IsZero() {
			logs[i].LoggedAt = now
		}
	}
	if err := provider.Runs().ReplaceLogs(ctx, runID, logs); err != nil {
		return s.errLog.Wrap("run save", err)
	}

	run.Status = domain.RunCompleted
	run.Progress = 100
	run.CompletedAt = &now
	run.UpdatedAt = now
	run.Logs = logs
	if err := provider.Runs().Update(ctx, run); err != nil {
		return s.errLog.Wrap("run save", err)
	}

	if run.AssignmentID != nil {
		if err := s.setAssignmentStatus(ctx, *run.AssignmentID, domain.StatusCompleted); err != nil {
			return err
		}
	}

	for i := range logs {
		if err := s.maybeRaiseOneRm(ctx, run.AthleteID, &logs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *strengthService) AbandonRun(ctx context.Context, runID int64) error {
	provider := s.sel.Provider()
	run, err := provider.Runs().GetByID(ctx, runID)
	if err != nil {
		return s.errLog.Wrap("run abandon", err)
	}
	if run.Status.Terminal() {
		return ErrRunFinished
	}
	now := time.Now()
	run.Status = domain.RunAbandoned
	run.CompletedAt = &now
	run.UpdatedAt = now
	if err := provider.Runs().Update(ctx, run); err != nil {
		return s.errLog.Wrap("run abandon", err)
	}
	return nil
}

// DeleteRun removes a run and hands its assignment back to the athlete, so
// a deleted workout can be started again from the planning board.
func (s *strengthService) DeleteRun(ctx context.Context, runID int64) error {
	provider := s.sel.Provider()
	run, err := provider.Runs().GetByID(ctx, runID)
	if err != nil {
		return s.errLog.Wrap("run delete", err)
	}
	if err := provider.Runs().Delete(ctx, runID); err != nil {
		return s.errLog.Wrap("run delete", err)
	}
	if run.AssignmentID != nil {
		if err := s.setAssignmentStatus(ctx, *run.AssignmentID, domain.StatusAssigned); err != nil {
			return err
		}
	}
	return nil
}

func (s *strengthService) RunHistory(ctx context.Context, athleteID int64, period HistoryPeriod, bounds HistoryRange, desc bool) ([]HistoryBucket, error) {
	runs, err := s.sel.Provider().Runs().ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, s.errLog.Wrap("run history", err)
	}
	var logs []domain.SetLog
	for _, run := range runs {
		logs = append(logs, run.Logs...)
	}
	return AggregateHistory(logs, period, bounds, desc), nil
}

func (s *strengthService) OneRmForAthlete(ctx context.Context, athleteID int64) ([]domain.OneRmRecord, error) {
	records, err := s.sel.Provider().OneRm().ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, s.errLog.Wrap("one rm list", err)
	}
	return records, nil
}

// maybeRaiseOneRm estimates a one-rep max from the logged set and stores it
// only when it strictly beats the current record. A missing record counts as
// beaten; an inestimable set is ignored.
func (s *strengthService) maybeRaiseOneRm(ctx context.Context, athleteID int64, log *domain.SetLog) error {
	estimate := EstimateOneRm(log.Weight, log.Reps)
	if estimate == nil {
		return nil
	}

	oneRm := s.sel.Provider().OneRm()
	current, err := oneRm.Get(ctx, athleteID, log.ExerciseID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return s.errLog.Wrap("one rm update", err)
	}
	if current != nil && float64(*estimate) <= current.Max {
		return nil
	}

	record := &domain.OneRmRecord{
		AthleteID:  athleteID,
		ExerciseID: log.ExerciseID,
		Max:        float64(*estimate),
		RecordedAt: log.LoggedAt,
	}
	if err := oneRm.Upsert(ctx, record); err != nil {
		return s.errLog.Wrap("one rm update", err)
	}
	return nil
}

func (s *strengthService) setAssignmentStatus(ctx context.Context, assignmentID int64, status domain.AssignmentStatus) error {
	assignments := s.sel.Provider().Assignments()
	assignment, err := assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return s.errLog.Wrap("assignment status", err)
	}
	assignment.Status = status
	assignment.UpdatedAt = time.Now()
	if err := assignments.Update(ctx, assignment); err != nil {
		return s.errLog.Wrap("assignment status", err)
	}
	return nil
}
