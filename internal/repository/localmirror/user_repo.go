package localmirror

import (
	"context"
	"strings"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
)

type userRepo struct {
	store *Store
}

// userRow is the mirrored user record. The domain struct hides the password
// hash from JSON, so the mirror needs its own row type to persist it.
type userRow struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	GroupIDs     []int64   `json:"groupIds,omitempty"`
	Birthday     string    `json:"birthday,omitempty"`
	FederationID string    `json:"federationId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func userToRow(u *domain.User) userRow {
	return userRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		GroupIDs:     u.GroupIDs,
		Birthday:     u.Birthday,
		FederationID: u.FederationID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userToDomain(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		GroupIDs:     row.GroupIDs,
		Birthday:     row.Birthday,
		FederationID: row.FederationID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows := load[userRow](r.store, KeyUsers)
	for _, row := range rows {
		if strings.EqualFold(row.Email, user.Email) {
			return 0, repository.RepositoryError("email already registered")
		}
	}
	if user.ID == 0 {
		user.ID = domain.NewID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	rows = append(rows, userToRow(user))
	save(r.store, KeyUsers, rows)
	return user.ID, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, row := range load[userRow](r.store, KeyUsers) {
		if strings.EqualFold(row.Email, email) {
			user := userToDomain(row)
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, row := range load[userRow](r.store, KeyUsers) {
		if row.ID == id {
			user := userToDomain(row)
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	rows := load[userRow](r.store, KeyUsers)
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userToDomain(row))
	}
	return users, nil
}

func (r *userRepo) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return load[domain.Group](r.store, KeyGroups), nil
}

func (r *userRepo) GroupMembers(ctx context.Context, groupID int64) ([]domain.User, error) {
	var out []domain.User
	for _, row := range load[userRow](r.store, KeyUsers) {
		for _, g := range row.GroupIDs {
			if g == groupID {
				out = append(out, userToDomain(row))
				break
			}
		}
	}
	return out, nil
}

func (r *userRepo) BirthdaysOn(ctx context.Context, monthDay string) ([]domain.User, error) {
	var out []domain.User
	for _, row := range load[userRow](r.store, KeyUsers) {
		// Birthday is an ISO date; the year part is irrelevant here.
		if len(row.Birthday) >= 10 && row.Birthday[5:10] == monthDay {
			out = append(out, userToDomain(row))
		}
	}
	return out, nil
}
