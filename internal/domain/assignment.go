package domain

import "time"

// AssignmentStatus type for assignment lifecycle
type AssignmentStatus string

const (
	StatusAssigned   AssignmentStatus = "assigned"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusCompleted  AssignmentStatus = "completed"
)

// SessionKind says which catalog a session id refers to.
type SessionKind string

const (
	KindSwim          SessionKind = "swim"
	KindStrengthBuild SessionKind = "strength"
)

// Assignment schedules a catalog session (swim or strength) for a target.
// Exactly one of UserID or GroupID is set. The backend has no native
// multi-group fan-out, so assigning to N groups means N assignment rows,
// one per group, each with its own notification.
type Assignment struct {
	ID        int64            `json:"id"`
	SessionID int64            `json:"sessionId"`
	Kind      SessionKind      `json:"kind"`
	UserID    *int64           `json:"userId,omitempty"`
	GroupID   *int64           `json:"groupId,omitempty"`
	Date      string           `json:"date"` // ISO date
	Slot      TimeSlot         `json:"slot"`
	Status    AssignmentStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
