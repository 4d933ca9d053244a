package cache

import (
	"maps"
	"slices"
	"sync"
)

// Namespace is the administrative surface shared by every TTL instance,
// whatever its key and value types.
type Namespace interface {
	Len() int
	Clear()
	Stats() Stats
	Close()
}

// Registry groups named cache namespaces so they can be listed, cleared and
// shut down together.
type Registry struct {
	mu         sync.RWMutex
	namespaces map[string]Namespace
}

func NewRegistry() *Registry {
	return &Registry{namespaces: make(map[string]Namespace)}
}

// Register adds ns under name, replacing any earlier namespace of that name.
func (r *Registry) Register(name string, ns Namespace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[name] = ns
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.namespaces))
}

func (r *Registry) Sizes() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sizes := make(map[string]int, len(r.namespaces))
	for name, ns := range r.namespaces {
		sizes[name] = ns.Len()
	}
	return sizes
}

func (r *Registry) Stats() map[string]Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make(map[string]Stats, len(r.namespaces))
	for name, ns := range r.namespaces {
		stats[name] = ns.Stats()
	}
	return stats
}

// ClearAll empties every namespace and returns how many entries were dropped.
func (r *Registry) ClearAll() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cleared := 0
	for _, ns := range r.namespaces {
		cleared += ns.Len()
		ns.Clear()
	}
	return cleared
}

func (r *Registry) Close() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ns := range r.namespaces {
		ns.Close()
	}
}
