package domain

import "time"

// StrengthSession is a reusable strength workout template built by a coach:
// a titled, ordered list of exercise items tagged with a primary cycle.
// Items tagged with another cycle may coexist on the same session; consumers
// filter by the cycle they are interested in.
type StrengthSession struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Cycle       Cycle          `json:"cycle"` // primary cycle of the session
	Items       []StrengthItem `json:"items"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// StrengthItem is one exercise slot inside a strength session. Position is
// the persisted order index; item order is significant and never derived
// from list position alone.
type StrengthItem struct {
	ID         int64    `json:"id"`
	SessionID  int64    `json:"sessionId"`
	ExerciseID int64    `json:"exerciseId"`
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	Percent1RM *float64 `json:"percent1rm"`
	RestSec    *int     `json:"restSec"`
	Cycle      Cycle    `json:"cycle"`
	Notes      string   `json:"notes,omitempty"`
	Position   *int     `json:"position"`
}

// RunStatus tracks the lifecycle of a strength run.
type RunStatus string

const (
	RunInProgress RunStatus = "in_progress"
	RunCompleted  RunStatus = "completed"
	RunAbandoned  RunStatus = "abandoned"
)

// Terminal reports whether the status admits no further transition.
func (s RunStatus) Terminal() bool {
	return s == RunCompleted || s == RunAbandoned
}

// StrengthRun is one tracked execution of a strength session by an athlete.
type StrengthRun struct {
	ID           int64      `json:"id"`
	SessionID    int64      `json:"sessionId"`
	AssignmentID *int64     `json:"assignmentId,omitempty"`
	AthleteID    int64      `json:"athleteId"`
	Status       RunStatus  `json:"status"`
	Progress     int        `json:"progress"` // percent, 0-100
	Logs         []SetLog   `json:"logs"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// SetLog records one performed set inside a run. The (run, exercise,
// set index) triple is advisory only; duplicates are tolerated.
type SetLog struct {
	ID         int64     `json:"id"`
	RunID      int64     `json:"runId"`
	ExerciseID int64     `json:"exerciseId"`
	SetIndex   int       `json:"setIndex"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"` // kilos
	RestSec    *int      `json:"restSec,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	LoggedAt   time.Time `json:"loggedAt"`
}

// OneRmRecord is the best known one-rep-max estimate for an athlete on one
// exercise. The stored value is monotonically non-decreasing: a new estimate
// only replaces it when strictly greater.
type OneRmRecord struct {
	ID         int64     `json:"id"`
	AthleteID  int64     `json:"athleteId"`
	ExerciseID int64     `json:"exerciseId"`
	Max        float64   `json:"max"` // kilos
	RecordedAt time.Time `json:"recordedAt"`
}
