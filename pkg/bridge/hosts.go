package bridge

import (
	"sync"

	"github.com/arandia/ergon/pkg/errors"
)

// HostFactory constructs a HostClient for a named host framework.
type HostFactory func() (HostClient, error)

var (
	hostsMu sync.RWMutex
	hosts   = map[string]HostFactory{}
)

// RegisterHost makes a host framework available by name. Host integrations
// register themselves here so deployments without them fail loudly at
// Connect rather than at first use.
func RegisterHost(name string, factory HostFactory) {
	hostsMu.Lock()
	defer hostsMu.Unlock()
	hosts[name] = factory
}

// Connect resolves a named host framework. An unknown name or a failing
// factory yields INTEGRATION_UNAVAILABLE with the cause attached.
func Connect(name string) (HostClient, error) {
	hostsMu.RLock()
	factory, ok := hosts[name]
	hostsMu.RUnlock()
	if !ok {
		return nil, errors.New(errors.CodeIntegrationUnavailable, "host framework not registered").
			WithContext("host", name)
	}
	client, err := factory()
	if err != nil {
		return nil, errors.Wrap(errors.CodeIntegrationUnavailable, "host framework failed to load", err).
			WithContext("host", name)
	}
	return client, nil
}

// Hosts returns the registered host names.
func Hosts() []string {
	hostsMu.RLock()
	defer hostsMu.RUnlock()
	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	return names
}
