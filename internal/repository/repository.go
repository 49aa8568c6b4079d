package repository

import (
	"context"

	"swimtrack/training-tracker/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Provider bundles every collection repository behind one door. There are two
// implementations: the remote backend and the local mirror. The selector picks
// one per call, so services are written once against this contract and never
// branch on the storage mode themselves.
type Provider interface {
	Sessions() SessionRepository
	Exercises() ExerciseRepository
	StrengthSessions() StrengthSessionRepository
	Runs() StrengthRunRepository
	SwimSessions() SwimSessionRepository
	Assignments() AssignmentRepository
	Notifications() NotificationRepository
	OneRm() OneRmRepository
	Records() RecordRepository
	Users() UserRepository
	Timesheet() TimesheetRepository
}

// SessionFilter narrows a training-session listing. Zero values mean
// "no constraint"; dates are inclusive ISO bounds.
type SessionFilter struct {
	AthleteID   *int64
	AthleteName string
	DateFrom    string
	DateTo      string
}

// SessionRepository defines the interface for interacting with swim log data.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.TrainingSession) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TrainingSession, error)
	List(ctx context.Context, filter SessionFilter) ([]domain.TrainingSession, error)
	Update(ctx context.Context, session *domain.TrainingSession) error
	Delete(ctx context.Context, id int64) error
}

// ExerciseRepository defines the interface for interacting with the exercise
// catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id int64) error
}

// StrengthSessionRepository manages strength session templates and their
// ordered item lists. Create and Update persist the embedded items as well.
type StrengthSessionRepository interface {
	Create(ctx context.Context, session *domain.StrengthSession) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.StrengthSession, error)
	List(ctx context.Context) ([]domain.StrengthSession, error)
	Update(ctx context.Context, session *domain.StrengthSession) error
	Delete(ctx context.Context, id int64) error
	// RemoveExerciseItems drops every item referencing the exercise, across
	// all sessions. Used by the exercise-deletion cascade.
	RemoveExerciseItems(ctx context.Context, exerciseID int64) error
}

// StrengthRunRepository manages run lifecycle rows and their set logs.
type StrengthRunRepository interface {
	Create(ctx context.Context, run *domain.StrengthRun) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.StrengthRun, error)
	ListByAthlete(ctx context.Context, athleteID int64) ([]domain.StrengthRun, error)
	Update(ctx context.Context, run *domain.StrengthRun) error
	AppendLog(ctx context.Context, log *domain.SetLog) (int64, error)
	// ReplaceLogs bulk-writes the full log list of a run, discarding what was
	// there before. Used by the final run save.
	ReplaceLogs(ctx context.Context, runID int64, logs []domain.SetLog) error
	Delete(ctx context.Context, id int64) error
}

// SwimSessionRepository manages the swim catalog.
type SwimSessionRepository interface {
	Create(ctx context.Context, session *domain.SwimSession) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.SwimSession, error)
	List(ctx context.Context, includeArchived bool) ([]domain.SwimSession, error)
	Update(ctx context.Context, session *domain.SwimSession) error
	Delete(ctx context.Context, id int64) error
}

// AssignmentRepository manages scheduled session assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	ListForTarget(ctx context.Context, userID int64, groupIDs []int64) ([]domain.Assignment, error)
	Update(ctx context.Context, assignment *domain.Assignment) error
	Delete(ctx context.Context, id int64) error
}

// NotificationRepository manages notifications and their targets.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) (int64, error)
	ListForUser(ctx context.Context, userID int64, groupIDs []int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// OneRmRepository manages per (athlete, exercise) one-rep-max records.
type OneRmRepository interface {
	Get(ctx context.Context, athleteID, exerciseID int64) (*domain.OneRmRecord, error)
	ListByAthlete(ctx context.Context, athleteID int64) ([]domain.OneRmRecord, error)
	Upsert(ctx context.Context, record *domain.OneRmRecord) error
}

// RecordRepository manages swim and club records.
type RecordRepository interface {
	UpsertSwimRecord(ctx context.Context, record *domain.SwimRecord) error
	ListSwimRecords(ctx context.Context, athleteID int64) ([]domain.SwimRecord, error)
	ListClubRecords(ctx context.Context) ([]domain.ClubRecord, error)
	ReplaceClubRecords(ctx context.Context, records []domain.ClubRecord) error
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	GroupMembers(ctx context.Context, groupID int64) ([]domain.User, error)
	// BirthdaysOn returns users whose birthday falls on the given "MM-DD" day.
	BirthdaysOn(ctx context.Context, monthDay string) ([]domain.User, error)
}

// TimesheetRepository manages coach shifts and locations.
type TimesheetRepository interface {
	CreateShift(ctx context.Context, shift *domain.TimesheetShift) (int64, error)
	ListShifts(ctx context.Context, coachID int64) ([]domain.TimesheetShift, error)
	UpdateShift(ctx context.Context, shift *domain.TimesheetShift) error
	DeleteShift(ctx context.Context, id int64) error
	CreateLocation(ctx context.Context, location *domain.TimesheetLocation) (int64, error)
	ListLocations(ctx context.Context) ([]domain.TimesheetLocation, error)
}
