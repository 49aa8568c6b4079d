package localmirror

import (
	"context"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

type assignmentRepo struct {
	store *Store
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *domain.Assignment) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if assignment.ID == 0 {
		assignment.ID = domain.NewID()
	}
	now := time.Now().UTC()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	assignments := load[domain.Assignment](r.store, KeyAssignments)
	assignments = append(assignments, *assignment)
	save(r.store, KeyAssignments, assignments)
	return assignment.ID, nil
}

func (r *assignmentRepo) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	for _, a := range load[domain.Assignment](r.store, KeyAssignments) {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *assignmentRepo) ListForTarget(ctx context.Context, userID int64, groupIDs []int64) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range load[domain.Assignment](r.store, KeyAssignments) {
		if a.UserID != nil && *a.UserID == userID {
			out = append(out, a)
			continue
		}
		if a.GroupID != nil {
			for _, g := range groupIDs {
				if *a.GroupID == g {
					out = append(out, a)
					break
				}
			}
		}
	}
	return out, nil
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *domain.Assignment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assignments := load[domain.Assignment](r.store, KeyAssignments)
	for i := range assignments {
		if assignments[i].ID == assignment.ID {
			assignment.CreatedAt = assignments[i].CreatedAt
			assignment.UpdatedAt = time.Now().UTC()
			assignments[i] = *assignment
			save(r.store, KeyAssignments, assignments)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *assignmentRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	assignments := load[domain.Assignment](r.store, KeyAssignments)
	kept := assignments[:0]
	for _, a := range assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(assignments) {
		return repository.ErrNotFound
	}
	save(r.store, KeyAssignments, kept)
	return nil
}

type notificationRepo struct {
	store *Store
}

func (r *notificationRepo) Create(ctx context.Context, notification *domain.Notification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if notification.ID == 0 {
		notification.ID = domain.NewID()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	if notification.Targets == nil {
		notification.Targets = []domain.NotificationTarget{}
	}

	notifications := load[domain.Notification](r.store, KeyNotifications)
	notifications = append(notifications, *notification)
	save(r.store, KeyNotifications, notifications)
	return notification.ID, nil
}

func (r *notificationRepo) ListForUser(ctx context.Context, userID int64, groupIDs []int64) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range load[domain.Notification](r.store, KeyNotifications) {
		if n.TargetsUser(userID, groupIDs) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notifications := load[domain.Notification](r.store, KeyNotifications)
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			save(r.store, KeyNotifications, notifications)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *notificationRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notifications := load[domain.Notification](r.store, KeyNotifications)
	kept := notifications[:0]
	for _, n := range notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notifications) {
		return repository.ErrNotFound
	}
	save(r.store, KeyNotifications, kept)
	return nil
}
