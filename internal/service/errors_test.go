package service

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/repository"
)

func TestRemoteErrorUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  RemoteError
		want string
	}{
		{"unauthorized", RemoteError{Status: 401, Message: "jwt expired"}, "Session expirée ou accès refusé, veuillez vous reconnecter."},
		{"forbidden", RemoteError{Status: 403, Message: "row level security"}, "Session expirée ou accès refusé, veuillez vous reconnecter."},
		{"unknown action", RemoteError{Code: CodeUnknownAction, Message: "no handler"}, "Action inconnue du serveur."},
		{"table missing", RemoteError{Code: CodeTableMissing, Message: "relation does not exist"}, "Données indisponibles : table manquante côté serveur."},
		{"passthrough", RemoteError{Status: 500, Message: "boom"}, "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.UserMessage())
		})
	}
}

func TestErrorLogDeduplicates(t *testing.T) {
	logger, hook := test.NewNullLogger()
	errLog := NewErrorLog()
	errLog.log = logger.WithField("component", "data")

	boom := &RemoteError{Status: 500, Message: "boom"}
	for i := 0; i < 3; i++ {
		wrapped := errLog.Wrap("op", boom)
		var remote *RemoteError
		require.ErrorAs(t, wrapped, &remote)
	}
	assert.Len(t, hook.Entries, 1, "same failure logs once")

	// a different status is a different failure
	errLog.Wrap("op", &RemoteError{Status: 502, Message: "boom"})
	assert.Len(t, hook.Entries, 2)

	// a fresh log starts over
	other := NewErrorLog()
	other.log = logger.WithField("component", "data")
	other.Wrap("op", boom)
	assert.Len(t, hook.Entries, 3)
}

func TestErrorLogPassesSentinels(t *testing.T) {
	errLog := NewErrorLog()
	assert.NoError(t, errLog.Wrap("op", nil))

	err := errLog.Wrap("op", repository.ErrNotFound)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestErrorLogWrapsPlainErrors(t *testing.T) {
	errLog := NewErrorLog()
	errLog.log = logrus.NewEntry(logrus.New())

	wrapped := errLog.Wrap("op", errors.New("dial tcp: no route to host"))
	var remote *RemoteError
	require.ErrorAs(t, wrapped, &remote)
	assert.Equal(t, "dial tcp: no route to host", remote.Message)
	assert.Equal(t, "dial tcp: no route to host", remote.UserMessage())
}
