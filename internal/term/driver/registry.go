package driver

import (
	"fmt"
	"sync"
)

// Probe constructs a driver for a terminal type, or declines it.
type Probe interface {
	// New returns a driver bound to the given surface, or false if
	// this probe does not handle the terminal type.
	New(s Surface, termType string) (Driver, bool)
}

var (
	registryMu sync.Mutex
	registry   []registered
)

type registered struct {
	name  string
	probe Probe
}

// Register adds a probe under a name. Probes are consulted in
// registration order. Typically called from a driver package's init.
func Register(name string, p Probe) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = append(registry, registered{name: name, probe: p})
}

// New walks the registered probes in order and returns the first
// driver that accepts the terminal type, along with the name it was
// registered under.
func New(s Surface, termType string) (Driver, string, error) {
	registryMu.Lock()
	probes := make([]registered, len(registry))
	copy(probes, registry)
	registryMu.Unlock()

	for _, r := range probes {
		if d, ok := r.probe.New(s, termType); ok {
			return d, r.name, nil
		}
	}
	return nil, "", fmt.Errorf("%w: %q", ErrNoDriver, termType)
}
