package domain

import "time"

// TimeSlot identifies which half of the day a session took place in.
type TimeSlot string

const (
	SlotMorning TimeSlot = "morning"
	SlotEvening TimeSlot = "evening"
)

// TrainingSession is one swim log entry recorded by (or for) an athlete.
//
// All five ratings live on a 1-5 scale here, regardless of how the backend
// persists them (it uses a 1-10 scale); the repository layer converts at the
// boundary. Effort and Feeling are required, the other three ratings are
// optional and stay nil when the athlete skipped them.
type TrainingSession struct {
	ID          int64     `json:"id"`
	AthleteID   *int64    `json:"athleteId,omitempty"`
	AthleteName string    `json:"athleteName"`
	Date        string    `json:"date"` // ISO date, e.g. "2024-01-01"
	Slot        TimeSlot  `json:"slot"`
	Effort      *int      `json:"effort"`
	Feeling     *int      `json:"feeling"`
	Performance *int      `json:"performance,omitempty"`
	Engagement  *int      `json:"engagement,omitempty"`
	Fatigue     *int      `json:"fatigue,omitempty"`
	Distance    *int      `json:"distance,omitempty"` // meters
	Duration    *int      `json:"duration,omitempty"` // minutes
	Comments    string    `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
