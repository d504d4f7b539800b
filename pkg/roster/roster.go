// Package roster holds the catalogue of agent variants. Variants register
// a named builder here; registration order is preserved so enumeration is
// deterministic.
package roster

import (
	"sync"

	"github.com/arandia/ergon/pkg/agent"
	"github.com/arandia/ergon/pkg/errors"
)

// Builder constructs a variant with its catalogue defaults, applying any
// extra options on top.
type Builder func(opts ...agent.Option) *agent.Base

// Entry is one catalogue slot.
type Entry struct {
	Name     string
	Category string
	Build    Builder
}

var (
	mu      sync.RWMutex
	entries []Entry
	index   = map[string]int{}
)

// Register adds a variant to the catalogue. Re-registering a name replaces
// the builder in place, keeping the original position.
func Register(name, category string, build Builder) {
	mu.Lock()
	defer mu.Unlock()
	e := Entry{Name: name, Category: category, Build: build}
	if pos, ok := index[name]; ok {
		entries[pos] = e
		return
	}
	index[name] = len(entries)
	entries = append(entries, e)
}

// Entries returns the catalogue in registration order.
func Entries() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Names returns the registered variant names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// New builds the named variant.
func New(name string, opts ...agent.Option) (*agent.Base, error) {
	mu.RLock()
	pos, ok := index[name]
	var build Builder
	if ok {
		build = entries[pos].Build
	}
	mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "unknown roster variant").
			WithContext("variant", name)
	}
	return build(opts...), nil
}
