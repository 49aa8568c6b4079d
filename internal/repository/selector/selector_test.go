package selector_test

import (
	"testing"

	"swimtrack/training-tracker/internal/repository/localmirror"
	"swimtrack/training-tracker/internal/repository/selector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMirror(t *testing.T) *localmirror.Provider {
	t.Helper()
	store, err := localmirror.NewStore(t.TempDir())
	require.NoError(t, err)
	return localmirror.NewProvider(store)
}

func TestCanUseBackend_ConfigAbsent(t *testing.T) {
	local := newMirror(t)
	sel := selector.New(nil, local, false, func() bool { return true })

	assert.False(t, sel.CanUseBackend())
	assert.Equal(t, local, sel.Provider())
}

func TestCanUseBackend_Offline(t *testing.T) {
	local := newMirror(t)
	remote := newMirror(t) // stands in for the backend provider
	sel := selector.New(remote, local, true, func() bool { return false })

	assert.False(t, sel.CanUseBackend())
	assert.Equal(t, local, sel.Provider())
}

func TestProvider_ReEvaluatedPerCall(t *testing.T) {
	local := newMirror(t)
	remote := newMirror(t)

	online := true
	sel := selector.New(remote, local, true, func() bool { return online })

	assert.Equal(t, remote, sel.Provider())
	online = false
	assert.Equal(t, local, sel.Provider())
	online = true
	assert.Equal(t, remote, sel.Provider())
}

func TestLocal_AlwaysMirror(t *testing.T) {
	local := newMirror(t)
	remote := newMirror(t)
	sel := selector.New(remote, local, true, func() bool { return true })
	assert.Equal(t, local, sel.Local())
}
