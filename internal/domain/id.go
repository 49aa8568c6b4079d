package domain

import (
	"sync/atomic"
	"time"
)

// lastID holds the most recently issued identifier so that two calls within
// the same millisecond still produce distinct, strictly increasing ids.
var lastID atomic.Int64

// NewID generates a client-side entity identifier. The backend assigns its own
// ids on insert where it can; everywhere else (local mirror mode, client-side
// pre-assignment) we use millisecond timestamps, matching what the backend
// would have produced for offline-created rows.
func NewID() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return now
		}
	}
}
