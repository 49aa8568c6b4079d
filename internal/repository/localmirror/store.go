// Package localmirror implements the substitute datastore used whenever the
// remote backend is unreachable or unconfigured. Every logical collection is
// persisted as one JSON blob under a stable string key: the serialized
// in-memory array, nothing more. Mutations are whole-collection
// read-modify-write, which bounds collection size to what fits in a single
// synchronous read, and cross-process writers are last-write-wins with no
// version check.
package localmirror

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

const keyPrefix = "swimtrack."

// Collection keys. Stable on purpose: renaming one orphans the blob.
const (
	KeySessions         = keyPrefix + "sessions"
	KeyExercises        = keyPrefix + "exercises"
	KeyStrengthSessions = keyPrefix + "strength_sessions"
	KeyRuns             = keyPrefix + "strength_runs"
	KeySwimSessions     = keyPrefix + "swim_sessions_catalog"
	KeyAssignments      = keyPrefix + "session_assignments"
	KeyNotifications    = keyPrefix + "notifications"
	KeyOneRm            = keyPrefix + "one_rm_records"
	KeySwimRecords      = keyPrefix + "swim_records"
	KeyClubRecords      = keyPrefix + "club_records"
	KeyUsers            = keyPrefix + "users"
	KeyGroups           = keyPrefix + "groups"
	KeyShifts           = keyPrefix + "timesheet_shifts"
	KeyLocations        = keyPrefix + "timesheet_locations"
)

// allKeys drives ResetAll. Every known collection key must appear here.
var allKeys = []string{
	KeySessions, KeyExercises, KeyStrengthSessions, KeyRuns,
	KeySwimSessions, KeyAssignments, KeyNotifications, KeyOneRm,
	KeySwimRecords, KeyClubRecords, KeyUsers, KeyGroups,
	KeyShifts, KeyLocations,
}

// Store is the flat key-value layer under the mirror repositories.
// Write failures (quota, serialization) are logged and swallowed: mirror
// persistence is best-effort by contract. Reads degrade to nil.
type Store struct {
	dir string
	log *logrus.Entry

	// guards read-modify-write cycles within this process; other processes
	// writing the same directory still race (last write wins).
	mu sync.Mutex
}

// NewStore opens (creating if needed) a mirror directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{
		dir: dir,
		log: logrus.WithField("component", "localmirror"),
	}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the raw blob stored under key, or nil when the key is absent
// or unreadable. Never returns an error: a broken mirror entry behaves like
// an empty collection.
func (s *Store) Get(key string) []byte {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("key", key).Warn("mirror read failed")
		}
		return nil
	}
	return data
}

// Save stores the blob under key. Best-effort: failures are logged, not
// surfaced, and the caller proceeds as if the write happened.
func (s *Store) Save(key string, data []byte) {
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("mirror write failed")
	}
}

// Remove deletes the blob under key, ignoring a missing file.
func (s *Store) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).WithField("key", key).Warn("mirror remove failed")
	}
}

// ResetAll clears every known collection key. Full local cache reset.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range allKeys {
		s.Remove(key)
	}
}

// load decodes the whole collection under key. A missing or corrupt blob
// comes back as nil, which callers treat as the empty collection.
func load[T any](s *Store, key string) []T {
	raw := s.Get(key)
	if raw == nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("mirror blob corrupt")
		return nil
	}
	return items
}

// save encodes and stores the whole collection under key.
func save[T any](s *Store, key string, items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("mirror marshal failed")
		return
	}
	s.Save(key, data)
}
