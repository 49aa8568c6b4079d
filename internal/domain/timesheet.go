package domain

import "time"

// TimesheetLocation is a coaching venue shifts are booked against.
type TimesheetLocation struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimesheetShift is one worked (or planned) coaching shift. Times are
// minutes since midnight local to the club; Date is the ISO day.
type TimesheetShift struct {
	ID         int64     `json:"id"`
	CoachID    int64     `json:"coachId"`
	LocationID int64     `json:"locationId"`
	Date       string    `json:"date"`
	StartMin   int       `json:"startMin"`
	EndMin     int       `json:"endMin"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DurationMinutes returns the shift length, zero when the bounds are inverted.
func (s *TimesheetShift) DurationMinutes() int {
	if s.EndMin <= s.StartMin {
		return 0
	}
	return s.EndMin - s.StartMin
}
