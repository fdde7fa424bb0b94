package dashboard

import (
	"sync"

	"hireboard/pkg/models"
)

// TemplateStore holds the session's saved posting templates. Templates are
// immutable once added and are only read back to seed new forms; they are not
// persisted across sessions.
type TemplateStore struct {
	mu        sync.RWMutex
	templates []models.Template
}

// NewTemplateStore creates an empty template store
func NewTemplateStore() *TemplateStore {
	return &TemplateStore{}
}

// Add appends a template snapshot
func (s *TemplateStore) Add(t models.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, t)
}

// Get returns the template with the given id
func (s *TemplateStore) Get(id string) (models.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.Template{}, false
}

// List returns a copy of the saved templates in insertion order
func (s *TemplateStore) List() []models.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Template(nil), s.templates...)
}

// Len returns the number of saved templates
func (s *TemplateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}
