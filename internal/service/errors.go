package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"swimtrack/training-tracker/internal/repository"
)

// Known backend error codes with dedicated user-facing translations.
const (
	CodeUnknownAction = "unknown_action"
	CodeTableMissing  = "table_missing"
)

// RemoteError wraps any failed remote operation in a uniform shape.
// Code and Status are optional; everything else passes its raw message
// through untranslated.
type RemoteError struct {
	Message string
	Code    string
	Status  int
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("remote error [%s]: %s", e.Code, e.Message)
	}
	if e.Status != 0 {
		return fmt.Sprintf("remote error (status %d): %s", e.Status, e.Message)
	}
	return "remote error: " + e.Message
}

// UserMessage translates the small set of known failures into French
// user-facing text; everything else surfaces its raw message.
func (e *RemoteError) UserMessage() string {
	switch {
	case e.Status == 401 || e.Status == 403:
		return "Session expirée ou accès refusé, veuillez vous reconnecter."
	case e.Code == CodeUnknownAction:
		return "Action inconnue du serveur."
	case e.Code == CodeTableMissing:
		return "Données indisponibles : table manquante côté serveur."
	}
	return e.Message
}

// ErrorLog deduplicates remote-error logging: each unique
// (code, status, message) triple is logged once per ErrorLog lifetime, then
// the error is handed back to the caller untouched. One ErrorLog is created
// per process and discarded with it; nothing lives at module scope.
type ErrorLog struct {
	mu   sync.Mutex
	seen map[string]struct{}
	log  *logrus.Entry
}

// NewErrorLog creates an empty dedup log.
func NewErrorLog() *ErrorLog {
	return &ErrorLog{
		seen: make(map[string]struct{}),
		log:  logrus.WithField("component", "data"),
	}
}

// Wrap normalizes a data-layer failure into a RemoteError (unless it already
// is one, or is nil), logs it at most once, and returns it for re-throwing.
func (l *ErrorLog) Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	// Sentinel repository errors keep their identity: callers match on them.
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	var remote *RemoteError
	if !errors.As(err, &remote) {
		remote = &RemoteError{Message: err.Error()}
	}

	key := fmt.Sprintf("%s|%d|%s", remote.Code, remote.Status, remote.Message)
	l.mu.Lock()
	_, logged := l.seen[key]
	if !logged {
		l.seen[key] = struct{}{}
	}
	l.mu.Unlock()

	if !logged {
		l.log.WithFields(logrus.Fields{
			"op":     op,
			"code":   remote.Code,
			"status": remote.Status,
		}).Error(remote.Message)
	}
	return remote
}
