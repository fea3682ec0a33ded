package commands

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu    sync.RWMutex
	names map[string]Command // primary name -> command
	index map[string]Command // primary name or alias -> command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]Command),
		index: make(map[string]Command),
	}
}

// Register adds c under its name and aliases.
// Returns an error if any of them is already taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, k := range keys {
		if _, exists := r.index[k]; exists {
			return fmt.Errorf("command name already registered: %s", k)
		}
	}

	r.names[c.Name()] = c
	for _, k := range keys {
		r.index[k] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.index[name]
	return cmd, ok
}

// All returns each command once, sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Sorted(maps.Keys(r.names))
	result := make([]Command, len(names))
	for i, name := range names {
		result[i] = r.names[name]
	}
	return result
}

// Label is the command name followed by its aliases, e.g. "list (ls)".
func Label(c Command) string {
	if len(c.Aliases()) == 0 {
		return c.Name()
	}
	return fmt.Sprintf("%s (%s)", c.Name(), strings.Join(c.Aliases(), ", "))
}

// DefaultRegistry holds the commands registered by this package's init funcs.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry and panics on a clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
