package label

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds the ordered label enumeration.
// It guarantees that DirName is injective over the registered labels.
type Registry struct {
	labels []Label
	byName map[string]Label
	byKey  map[int]Label
	byDir  map[string]Label
	mu     sync.RWMutex
}

// NewRegistry creates a new empty label registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Label),
		byKey:  make(map[int]Label),
		byDir:  make(map[string]Label),
	}
}

// Register adds a label to the enumeration.
func (r *Registry) Register(l Label) error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("key %d: %w", l.Key, ErrEmptyName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byKey[l.Key]; ok {
		return fmt.Errorf("%w: %d used by %q and %q", ErrDuplicateKey, l.Key, existing.Name, l.Name)
	}
	if _, ok := r.byName[l.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, l.Name)
	}
	dir := l.DirName()
	if existing, ok := r.byDir[dir]; ok {
		return fmt.Errorf("%w: %q and %q both map to %q", ErrDirCollision, existing.Name, l.Name, dir)
	}

	r.byKey[l.Key] = l
	r.byName[l.Name] = l
	r.byDir[dir] = l

	r.labels = append(r.labels, l)
	sort.Slice(r.labels, func(i, j int) bool {
		return r.labels[i].Key < r.labels[j].Key
	})
	return nil
}

// Lookup resolves operator input to a label.
// Only an exact match of the full label name is accepted; surrounding
// whitespace is ignored.
func (r *Registry) Lookup(text string) (Label, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byName[strings.TrimSpace(text)]
	if !ok {
		return Label{}, fmt.Errorf("%w: %q", ErrUnknownLabel, text)
	}
	return l, nil
}

// ByKey returns the label with the given key.
func (r *Registry) ByKey(key int) (Label, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byKey[key]
	return l, ok
}

// At returns the i-th label in key order.
func (r *Registry) At(i int) Label {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.labels[i]
}

// All returns all labels in key order.
func (r *Registry) All() []Label {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Label, len(r.labels))
	copy(out, r.labels)
	return out
}

// Names returns all label names in key order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.labels))
	for i, l := range r.labels {
		names[i] = l.Name
	}
	return names
}

// Count returns the number of registered labels.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.labels)
}
