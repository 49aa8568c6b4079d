package domain

import "time"

// SwimSession is a catalog entry: a reusable swim workout curated by a coach.
// Folder is an optional organization path ("technique/sprint"); archived
// sessions stay queryable but are hidden from the default catalog listing.
type SwimSession struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	Folder      string     `json:"folder,omitempty"`
	Archived    bool       `json:"archived"`
	Items       []SwimItem `json:"items"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SwimItem is one line of a swim session. The structured fields (Block,
// Stroke, Intensity, Equipment, RestType) describe the drill; Label,
// Distance, Duration and IntensityLabel are denormalized for quick rendering
// without re-deriving them from the structure.
type SwimItem struct {
	ID        int64  `json:"id"`
	SessionID int64  `json:"sessionId"`
	Position  *int   `json:"position"`
	Block     string `json:"block,omitempty"`    // e.g. "warmup", "main", "cooldown"
	Exercise  string `json:"exercise,omitempty"` // drill grouping inside the block
	Stroke    string `json:"stroke,omitempty"`
	Intensity string `json:"intensity,omitempty"`
	Equipment string `json:"equipment,omitempty"`
	RestType  string `json:"restType,omitempty"`

	Label          string `json:"label,omitempty"`
	Distance       *int   `json:"distance,omitempty"` // meters
	Duration       *int   `json:"duration,omitempty"` // minutes
	IntensityLabel string `json:"intensityLabel,omitempty"`
	Notes          string `json:"notes,omitempty"`
}
