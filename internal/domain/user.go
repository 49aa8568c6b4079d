package domain

import "time"

// Role type to distinguish between user roles
type Role string

const (
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

// User represents a user in the system (either a Coach or an Athlete).
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Should be unique
	PasswordHash string    `json:"-"`     // Never expose this via JSON
	Role         Role      `json:"role"`
	GroupIDs     []int64   `json:"groupIds,omitempty"`
	Birthday     string    `json:"birthday,omitempty"`     // ISO date, year part ignored for birthday matching
	FederationID string    `json:"federationId,omitempty"` // external swim federation id
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

func (u *User) IsAthlete() bool {
	return u.Role == RoleAthlete
}

// Group is a training group athletes belong to (e.g. an age bracket lane).
type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
