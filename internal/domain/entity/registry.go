package entity

import (
	"sort"
	"sync"
)

// Registry maps keys to their minimum emitted level.
// A key that is absent is unregistered, which differs from being set to
// LevelOff. Registry is safe for concurrent use; nil keys are never stored.
// The zero value is an empty registry ready to use.
type Registry struct {
	mu     sync.RWMutex
	levels map[*Key]Level
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		levels: make(map[*Key]Level),
	}
}

// Get returns the threshold registered for key
func (r *Registry) Get(key *Key) (Level, bool) {
	r.mu.RLock()
	level, ok := r.levels[key]
	r.mu.RUnlock()
	return level, ok
}

// Has reports whether key is registered
func (r *Registry) Has(key *Key) bool {
	_, ok := r.Get(key)
	return ok
}

// Add inserts key at level if it is absent and reports whether it did.
// An already registered key keeps the more verbose of its current level
// and level, and Add returns false.
func (r *Registry) Add(key *Key, level Level) bool {
	if key == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lazyInit()
	current, ok := r.levels[key]
	if !ok {
		r.levels[key] = level
		return true
	}
	r.levels[key] = MinLevel(current, level)
	return false
}

// Set stores level for key unconditionally
func (r *Registry) Set(key *Key, level Level) {
	if key == nil {
		return
	}

	r.mu.Lock()
	r.lazyInit()
	r.levels[key] = level
	r.mu.Unlock()
}

// Update lowers the threshold of key to level. An absent key is inserted.
// It reports whether the stored value changed.
func (r *Registry) Update(key *Key, level Level) bool {
	if key == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lazyInit()
	current, ok := r.levels[key]
	if ok && level >= current {
		return false
	}
	r.levels[key] = level
	return true
}

// lazyInit allocates the map of a zero-value registry; callers hold the write lock
func (r *Registry) lazyInit() {
	if r.levels == nil {
		r.levels = make(map[*Key]Level)
	}
}

// Remove unregisters key and reports whether it was present
func (r *Registry) Remove(key *Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.levels[key]; !ok {
		return false
	}
	delete(r.levels, key)
	return true
}

// Len returns the number of registered keys
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.levels)
}

// Keys returns a snapshot of the registered keys ordered by display name
func (r *Registry) Keys() []*Key {
	r.mu.RLock()
	keys := make([]*Key, 0, len(r.levels))
	for k := range r.levels {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Display() < keys[j].Display()
	})
	return keys
}

// Snapshot returns a copy of the key to level mapping
func (r *Registry) Snapshot() map[*Key]Level {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[*Key]Level, len(r.levels))
	for k, v := range r.levels {
		out[k] = v
	}
	return out
}
