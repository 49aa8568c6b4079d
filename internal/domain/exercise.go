package domain

import "time"

// Cycle is a training periodization phase. It selects which parameter set of
// an Exercise applies when the exercise shows up in a strength session.
type Cycle string

const (
	CycleEndurance    Cycle = "endurance"
	CycleHypertrophie Cycle = "hypertrophie"
	CycleForce        Cycle = "force"
)

// KnownCycles lists every valid cycle tag, in display order.
var KnownCycles = []Cycle{CycleEndurance, CycleHypertrophie, CycleForce}

// Valid reports whether c is one of the known cycle tags.
func (c Cycle) Valid() bool {
	switch c {
	case CycleEndurance, CycleHypertrophie, CycleForce:
		return true
	}
	return false
}

// ExerciseKind distinguishes proper strength work from warmup drills.
type ExerciseKind string

const (
	KindStrength ExerciseKind = "strength"
	KindWarmup   ExerciseKind = "warmup"
)

// CycleParams holds the prescription of an exercise for one training cycle.
// A nil field means "unspecified" and is rendered as a dash by clients;
// 0 is a valid recorded value and must never be conflated with nil.
type CycleParams struct {
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	Percent1RM      *float64 `json:"percent1rm"`
	RestSetSec      *int     `json:"restSetSec"`      // rest between sets
	RestExerciseSec *int     `json:"restExerciseSec"` // rest before the next exercise
}

// Exercise is a catalog exercise definition owned by a coach.
//
// All three per-cycle parameter groups are always present on the entity
// (possibly with all fields nil); exactly one of them is active for a given
// cycle selection.
type Exercise struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Illustration string       `json:"illustration,omitempty"` // object key or URL
	Kind         ExerciseKind `json:"kind"`
	Endurance    CycleParams  `json:"endurance"`
	Hypertrophie CycleParams  `json:"hypertrophie"`
	Force        CycleParams  `json:"force"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// ParamsFor returns the parameter group matching the given cycle.
// Unknown cycles resolve to an empty group rather than an error; callers
// validate cycle tags at the boundary.
func (e *Exercise) ParamsFor(cycle Cycle) CycleParams {
	switch cycle {
	case CycleEndurance:
		return e.Endurance
	case CycleHypertrophie:
		return e.Hypertrophie
	case CycleForce:
		return e.Force
	}
	return CycleParams{}
}
