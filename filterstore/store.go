// Package filterstore persists named filter states across sessions.
package filterstore

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"fieldfilter/filter"
)

// SavedFilter is one named, persisted filter state.
type SavedFilter struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Conditions filter.FilterState `json:"conditions"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// Store manages saved-filter persistence and retrieval.
type Store interface {
	// Save adds a new saved filter
	Save(f *SavedFilter) error

	// Get retrieves a saved filter by ID
	Get(id string) (*SavedFilter, error)

	// List returns all saved filters, oldest first
	List() ([]*SavedFilter, error)

	// Update replaces an existing saved filter
	Update(f *SavedFilter) error

	// Delete removes a saved filter
	Delete(id string) error
}

// InMemoryStore implements Store with a map. Thread-safe with RWMutex.
type InMemoryStore struct {
	filters map[string]*SavedFilter
	mu      sync.RWMutex
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		filters: make(map[string]*SavedFilter),
	}
}

// Save adds a new saved filter, enforcing unique IDs and setting both
// timestamps.
func (s *InMemoryStore) Save(f *SavedFilter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.filters[f.ID]; exists {
		return fmt.Errorf("filter with ID %s already exists", f.ID)
	}

	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	s.filters[f.ID] = f
	return nil
}

// Get retrieves a saved filter by ID.
func (s *InMemoryStore) Get(id string) (*SavedFilter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, exists := s.filters[id]
	if !exists {
		return nil, fmt.Errorf("filter with ID %s not found", id)
	}
	return f, nil
}

// List returns all saved filters ordered by creation time, then name for
// a stable tiebreak.
func (s *InMemoryStore) List() ([]*SavedFilter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedFilters(s.filters), nil
}

// Update replaces an existing saved filter, preserving CreatedAt and
// refreshing UpdatedAt.
func (s *InMemoryStore) Update(f *SavedFilter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.filters[f.ID]
	if !exists {
		return fmt.Errorf("filter with ID %s not found", f.ID)
	}

	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now()
	s.filters[f.ID] = f
	return nil
}

// Delete removes a saved filter.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.filters[id]; !exists {
		return fmt.Errorf("filter with ID %s not found", id)
	}

	delete(s.filters, id)
	return nil
}

func sortedFilters(m map[string]*SavedFilter) []*SavedFilter {
	out := make([]*SavedFilter, 0, len(m))
	for _, f := range m {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
