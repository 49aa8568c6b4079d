// Package selector decides, per call, which repository.Provider a data
// operation runs against: the remote backend when it is configured and the
// host looks connected, the local mirror otherwise.
package selector

import (
	"net"

	"github.com/sirupsen/logrus"

	"swimtrack/training-tracker/internal/repository"
)

// ConnectivityProbe reports whether the host currently has network
// connectivity. It must be a cheap heuristic, not a health-check round trip.
type ConnectivityProbe func() bool

// Selector picks the active provider. The decision is re-evaluated on every
// call with no caching and no retry: a flap mid-flight simply routes the next
// operation to the other store.
type Selector struct {
	remote     repository.Provider // nil when the backend is not configured
	local      repository.Provider
	configured bool
	probe      ConnectivityProbe
	log        *logrus.Entry
}

// New builds a selector. remote may be nil (configuration absent), in which
// case every call lands on the mirror; that is the silent fallback, not an
// error. probe may be nil to use the default interface heuristic.
func New(remote, local repository.Provider, configured bool, probe ConnectivityProbe) *Selector {
	if probe == nil {
		probe = DefaultProbe
	}
	return &Selector{
		remote:     remote,
		local:      local,
		configured: configured && remote != nil,
		probe:      probe,
		log:        logrus.WithField("component", "selector"),
	}
}

// CanUseBackend is true iff the remote endpoint and credential are configured
// and the connectivity probe passes. Evaluated fresh on every call.
func (s *Selector) CanUseBackend() bool {
	return s.configured && s.probe()
}

// Provider returns the store the current call should use.
func (s *Selector) Provider() repository.Provider {
	if s.CanUseBackend() {
		return s.remote
	}
	return s.local
}

// Local always returns the mirror, for operations that address it explicitly
// (cache reset, offline export).
func (s *Selector) Local() repository.Provider {
	return s.local
}

// DefaultProbe reports connectivity when at least one non-loopback interface
// is up with an address assigned. No packets are sent.
func DefaultProbe() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err == nil && len(addrs) > 0 {
			return true
		}
	}
	return false
}
