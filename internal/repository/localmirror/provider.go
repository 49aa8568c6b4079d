package localmirror

import (
	"swimtrack/training-tracker/internal/repository"
)

// Provider is the local-mirror implementation of repository.Provider.
// Every repository reads and writes whole-collection blobs on the Store.
type Provider struct {
	store *Store
}

// NewProvider wraps a mirror store as a repository provider.
func NewProvider(store *Store) *Provider {
	return &Provider{store: store}
}

func (p *Provider) Sessions() repository.SessionRepository { return &sessionRepo{p.store} }
func (p *Provider) Exercises() repository.ExerciseRepository {
	return &exerciseRepo{p.store}
}
func (p *Provider) StrengthSessions() repository.StrengthSessionRepository {
	return &strengthSessionRepo{p.store}
}
func (p *Provider) Runs() repository.StrengthRunRepository { return &runRepo{p.store} }
func (p *Provider) SwimSessions() repository.SwimSessionRepository {
	return &swimSessionRepo{p.store}
}
func (p *Provider) Assignments() repository.AssignmentRepository {
	return &assignmentRepo{p.store}
}
func (p *Provider) Notifications() repository.NotificationRepository {
	return &notificationRepo{p.store}
}
func (p *Provider) OneRm() repository.OneRmRepository    { return &oneRmRepo{p.store} }
func (p *Provider) Records() repository.RecordRepository { return &recordRepo{p.store} }
func (p *Provider) Users() repository.UserRepository     { return &userRepo{p.store} }
func (p *Provider) Timesheet() repository.TimesheetRepository {
	return &timesheetRepo{p.store}
}
