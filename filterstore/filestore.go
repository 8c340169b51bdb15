package filterstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore implements Store on a single JSON file. Every mutation writes
// the whole file; the data set is a handful of saved filters, not a
// database. A corrupt or missing file loads as an empty store — stale
// persisted state must never block startup.
type FileStore struct {
	path    string
	filters map[string]*SavedFilter
	mu      sync.Mutex
}

// NewFileStore opens a file-backed store, loading existing content if the
// file is present and readable.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		filters: make(map[string]*SavedFilter),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read filter store: %w", err)
	}

	var loaded []*SavedFilter
	if err := json.Unmarshal(data, &loaded); err != nil {
		// Corrupt state decodes to empty, not an error.
		return s, nil
	}
	for _, f := range loaded {
		s.filters[f.ID] = f
	}
	return s, nil
}

// Save adds a new saved filter and persists.
func (s *FileStore) Save(f *SavedFilter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.filters[f.ID]; exists {
		return fmt.Errorf("filter with ID %s already exists", f.ID)
	}

	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	s.filters[f.ID] = f
	return s.persist()
}

// Get retrieves a saved filter by ID.
func (s *FileStore) Get(id string) (*SavedFilter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, exists := s.filters[id]
	if !exists {
		return nil, fmt.Errorf("filter with ID %s not found", id)
	}
	return f, nil
}

// List returns all saved filters ordered by creation time.
func (s *FileStore) List() ([]*SavedFilter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedFilters(s.filters), nil
}

// Update replaces an existing saved filter and persists.
func (s *FileStore) Update(f *SavedFilter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.filters[f.ID]
	if !exists {
		return fmt.Errorf("filter with ID %s not found", f.ID)
	}

	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now()
	s.filters[f.ID] = f
	return s.persist()
}

// Delete removes a saved filter and persists.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.filters[id]; !exists {
		return fmt.Errorf("filter with ID %s not found", id)
	}

	delete(s.filters, id)
	return s.persist()
}

// persist writes the full filter list. Callers hold the lock.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(sortedFilters(s.filters), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal filters: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write filter store: %w", err)
	}
	return nil
}
