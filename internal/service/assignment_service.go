package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/selector"
)

// FanOutEntry is the outcome of one group in a multi-group assignment.
type FanOutEntry struct {
	GroupID      int64  `json:"groupId"`
	AssignmentID int64  `json:"assignmentId,omitempty"`
	Error        string `json:"error,omitempty"`
}

// FanOutResult sums up a multi-group assignment. The backend has no native
// fan-out, so each group gets its own assignment row and notification; any
// of them can fail independently and the ones already written stay.
type FanOutResult struct {
	Entries []FanOutEntry `json:"entries"`
	Created int           `json:"created"`
	Failed  int           `json:"failed"`
}

// AssignmentService defines operations for scheduling catalog sessions.
type AssignmentService interface {
	AssignToUser(ctx context.Context, assignment *domain.Assignment) (int64, error)
	// AssignToGroups writes one assignment per group, sequentially, plus one
	// notification each. Partial failure is reported, not rolled back.
	AssignToGroups(ctx context.Context, template *domain.Assignment, groupIDs []int64) (*FanOutResult, error)
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Assignment, error)
	SetStatus(ctx context.Context, id int64, status domain.AssignmentStatus) error
	Delete(ctx context.Context, id int64) error
}

type assignmentService struct {
	sel    *selector.Selector
	errLog *ErrorLog
}

// NewAssignmentService creates a new instance of AssignmentService.
func NewAssignmentService(sel *selector.Selector, errLog *ErrorLog) AssignmentService {
	return &assignmentService{sel: sel, errLog: errLog}
}

func validateAssignment(assignment *domain.Assignment) error {
	if assignment.SessionID == 0 {
		return errors.New("assignment needs a session")
	}
	if assignment.Kind != domain.KindSwim && assignment.Kind != domain.KindStrengthBuild {
		return fmt.Errorf("unknown session kind %q", assignment.Kind)
	}
	if assignment.Date == "" {
		return errors.New("assignment date is required")
	}
	if _, err := time.Parse("2006-01-02", assignment.Date); err != nil {
		return fmt.Errorf("invalid assignment date %q", assignment.Date)
	}
	return nil
}

func (s *assignmentService) AssignToUser(ctx context.Context, assignment *domain.Assignment) (int64, error) {
	if err := validateAssignment(assignment); err != nil {
		return 0, err
	}
	if assignment.UserID == nil {
		return 0, errors.New("assignment needs a user target")
	}
	assignment.GroupID = nil
	assignment.Status = domain.StatusAssigned
	now := time.Now()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	provider := s.sel.Provider()
	id, err := provider.Assignments().Create(ctx, assignment)
	if err != nil {
		return 0, s.errLog.Wrap("assignment create", err)
	}

	if err := s.notifyTarget(ctx, assignment, domain.NotificationTarget{UserID: assignment.UserID}); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *assignmentService) AssignToGroups(ctx context.Context, template *domain.Assignment, groupIDs []int64) (*FanOutResult, error) {
	if err := validateAssignment(template); err != nil {
		return nil, err
	}
	if len(groupIDs) == 0 {
		return nil, errors.New("at least one group is required")
	}

	provider := s.sel.Provider()
	result := &FanOutResult{}
	var errs error

	for _, groupID := range groupIDs {
		assignment := *template
		assignment.ID = 0
		assignment.UserID = nil
		assignment.GroupID = &groupID
		assignment.Status = domain.StatusAssigned
		now := time.Now()
		assignment.CreatedAt = now
		assignment.UpdatedAt = now

		entry := FanOutEntry{GroupID: groupID}
		id, err := provider.Assignments().Create(ctx, &assignment)
		if err != nil {
			err = s.errLog.Wrap("assignment fan-out", err)
			entry.Error = err.Error()
			errs = multierr.Append(errs, fmt.Errorf("group %d: %w", groupID, err))
			result.Failed++
			result.Entries = append(result.Entries, entry)
			continue
		}
		entry.AssignmentID = id

		if err := s.notifyTarget(ctx, &assignment, domain.NotificationTarget{GroupID: &groupID}); err != nil {
			entry.Error = err.Error()
			errs = multierr.Append(errs, fmt.Errorf("group %d: %w", groupID, err))
			result.Failed++
			result.Entries = append(result.Entries, entry)
			continue
		}
		result.Created++
		result.Entries = append(result.Entries, entry)
	}
	return result, errs
}

func (s *assignmentService) notifyTarget(ctx context.Context, assignment *domain.Assignment, target domain.NotificationTarget) error {
	kind := "natation"
	if assignment.Kind == domain.KindStrengthBuild {
		kind = "musculation"
	}
	notification := &domain.Notification{
		Title:     fmt.Sprintf("Nouvelle séance %s le %s", kind, assignment.Date),
		Type:      domain.NotifAssignment,
		Targets:   []domain.NotificationTarget{target},
		CreatedAt: time.Now(),
	}
	if _, err := s.sel.Provider().Notifications().Create(ctx, notification); err != nil {
		return s.errLog.Wrap("assignment notify", err)
	}
	return nil
}

func (s *assignmentService) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	assignment, err := s.sel.Provider().Assignments().GetByID(ctx, id)
	if err != nil {
		return nil, s.errLog.Wrap("assignment get", err)
	}
	return assignment, nil
}

// ListForUser resolves the user's groups and returns every assignment that
// targets the user directly or through a group.
func (s *assignmentService) ListForUser(ctx context.Context, userID int64) ([]domain.Assignment, error) {
	provider := s.sel.Provider()
	user, err := provider.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, s.errLog.Wrap("assignment list", err)
	}
	assignments, err := provider.Assignments().ListForTarget(ctx, userID, user.GroupIDs)
	if err != nil {
		return nil, s.errLog.Wrap("assignment list", err)
	}
	return assignments, nil
}

func (s *assignmentService) SetStatus(ctx context.Context, id int64, status domain.AssignmentStatus) error {
	switch status {
	case domain.StatusAssigned, domain.StatusInProgress, domain.StatusCompleted:
	default:
		return fmt.Errorf("unknown assignment status %q", status)
	}
	provider := s.sel.Provider()
	assignment, err := provider.Assignments().GetByID(ctx, id)
	if err != nil {
		return s.errLog.Wrap("assignment status", err)
	}
	assignment.Status = status
	assignment.UpdatedAt = time.Now()
	if err := provider.Assignments().Update(ctx, assignment); err != nil {
		return s.errLog.Wrap("assignment status", err)
	}
	return nil
}

func (s *assignmentService) Delete(ctx context.Context, id int64) error {
	if err := s.sel.Provider().Assignments().Delete(ctx, id); err != nil {
		return s.errLog.Wrap("assignment delete", err)
	}
	return nil
}
