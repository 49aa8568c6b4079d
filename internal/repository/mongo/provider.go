// Package mongo is the remote-backend implementation of the repository
// contract. Each collection has an explicit row schema and a pure mapper
// pair (toDomain / toRow): rows are validated at the boundary instead of
// defensively throughout call sites, and a row missing its required fields
// maps to nil and is filtered out of listings.
package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"swimtrack/training-tracker/internal/repository"
)

// Backend collection names. Fixed contract with the managed store.
const (
	colSessions      = "sessions"
	colExercises     = "exercises"
	colStrengthSess  = "strength_sessions"
	colStrengthItems = "strength_session_items"
	colRuns          = "strength_session_runs"
	colSetLogs       = "strength_set_logs"
	colSwimSessions  = "swim_sessions_catalog"
	colSwimItems     = "swim_session_items"
	colAssignments   = "session_assignments"
	colNotifications = "notifications"
	colNotifTargets  = "notification_targets"
	colOneRm         = "one_rm_records"
	colClubRecords   = "club_records"
	colSwimRecords   = "swim_records"
	colShifts        = "timesheet_shifts"
	colLocations     = "timesheet_locations"
	colUsers         = "users"
	colGroups        = "groups"
	colGroupMembers  = "group_members"
)

// Provider is the remote implementation of repository.Provider.
type Provider struct {
	db *mongo.Database
}

// NewProvider wraps a backend database handle as a repository provider.
func NewProvider(db *mongo.Database) *Provider {
	return &Provider{db: db}
}

func (p *Provider) Sessions() repository.SessionRepository {
	return &sessionRepo{collection: p.db.Collection(colSessions)}
}

func (p *Provider) Exercises() repository.ExerciseRepository {
	return &exerciseRepo{collection: p.db.Collection(colExercises)}
}

func (p *Provider) StrengthSessions() repository.StrengthSessionRepository {
	return &strengthSessionRepo{
		sessions: p.db.Collection(colStrengthSess),
		items:    p.db.Collection(colStrengthItems),
	}
}

func (p *Provider) Runs() repository.StrengthRunRepository {
	return &runRepo{
		runs: p.db.Collection(colRuns),
		logs: p.db.Collection(colSetLogs),
	}
}

func (p *Provider) SwimSessions() repository.SwimSessionRepository {
	return &swimSessionRepo{
		sessions: p.db.Collection(colSwimSessions),
		items:    p.db.Collection(colSwimItems),
	}
}

func (p *Provider) Assignments() repository.AssignmentRepository {
	return &assignmentRepo{collection: p.db.Collection(colAssignments)}
}

func (p *Provider) Notifications() repository.NotificationRepository {
	return &notificationRepo{
		notifications: p.db.Collection(colNotifications),
		targets:       p.db.Collection(colNotifTargets),
	}
}

func (p *Provider) OneRm() repository.OneRmRepository {
	return &oneRmRepo{collection: p.db.Collection(colOneRm)}
}

func (p *Provider) Records() repository.RecordRepository {
	return &recordRepo{
		swim: p.db.Collection(colSwimRecords),
		club: p.db.Collection(colClubRecords),
	}
}

func (p *Provider) Users() repository.UserRepository {
	return &userRepo{
		users:   p.db.Collection(colUsers),
		groups:  p.db.Collection(colGroups),
		members: p.db.Collection(colGroupMembers),
	}
}

func (p *Provider) Timesheet() repository.TimesheetRepository {
	return &timesheetRepo{
		shifts:    p.db.Collection(colShifts),
		locations: p.db.Collection(colLocations),
	}
}
