package domain

import "time"

// SwimRecord is an athlete's best time over one event in one pool length.
type SwimRecord struct {
	ID         int64     `json:"id"`
	AthleteID  int64     `json:"athleteId"`
	Event      string    `json:"event"` // e.g. "100 NL"
	Pool       string    `json:"pool"`  // "25m" or "50m"
	Seconds    float64   `json:"seconds"`
	RecordedAt time.Time `json:"recordedAt"`
}

// ClubRecord is the club-wide best for an event, per category and gender.
// Recalculation is delegated to an external job; the entity is read-mostly.
type ClubRecord struct {
	ID          int64     `json:"id"`
	Event       string    `json:"event"`
	Pool        string    `json:"pool"`
	Category    string    `json:"category,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	AthleteID   int64     `json:"athleteId"`
	AthleteName string    `json:"athleteName,omitempty"`
	Seconds     float64   `json:"seconds"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// HallOfFameEntry is one athlete's line in a ranked metric listing.
type HallOfFameEntry struct {
	AthleteID   *int64  `json:"athleteId,omitempty"`
	AthleteName string  `json:"athleteName"`
	Value       float64 `json:"value"`
}

// HallOfFame holds the top-ranked athletes per metric. Each list carries at
// most five entries, ties broken by input iteration order.
type HallOfFame struct {
	Distance   []HallOfFameEntry `json:"distance"`   // total meters swum
	Effort     []HallOfFameEntry `json:"effort"`     // mean effort rating
	Engagement []HallOfFameEntry `json:"engagement"` // mean engagement, where present
	Volume     []HallOfFameEntry `json:"volume"`     // total strength reps
	Tonnage    []HallOfFameEntry `json:"tonnage"`    // total reps x kilos
	MaxWeight  []HallOfFameEntry `json:"maxWeight"`  // heaviest logged set
}
