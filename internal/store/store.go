package store

import (
	"context"
	"sync"

	"hireboard/pkg/models"
)

// Store is the persistence bridge for the posting collection: one-shot
// hydration at startup and a full-collection overwrite on every change.
type Store interface {
	// Load reads the whole posting collection. A missing value yields an
	// empty collection, not an error.
	Load(ctx context.Context) ([]models.JobPosting, error)

	// Save overwrites the stored collection with the given one
	Save(ctx context.Context, postings []models.JobPosting) error

	// Close releases the underlying connection, if any
	Close() error
}

// MemoryStore keeps the collection in process memory. Used in tests and when
// the service runs without a storage backend.
type MemoryStore struct {
	mu       sync.RWMutex
	postings []models.JobPosting
	saves    int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored collection
func (m *MemoryStore) Load(ctx context.Context) ([]models.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	postings := make([]models.JobPosting, 0, len(m.postings))
	for _, p := range m.postings {
		postings = append(postings, p.Clone())
	}
	return postings, nil
}

// Save replaces the stored collection
func (m *MemoryStore) Save(ctx context.Context, postings []models.JobPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]models.JobPosting, 0, len(postings))
	for _, p := range postings {
		stored = append(stored, p.Clone())
	}
	m.postings = stored
	m.saves++
	return nil
}

// Saves returns how many times Save has been called
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// Close is a no-op for the in-memory store
func (m *MemoryStore) Close() error {
	return nil
}
