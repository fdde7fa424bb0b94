package audit

import (
	"sync"
	"time"

	"hireboard/pkg/models"
	"hireboard/pkg/utils"
)

// Log is the append-only audit trail of posting mutations. Entries are
// immutable once appended and ordered newest-first. The log lives for the
// session only; it is never persisted.
type Log struct {
	mu      sync.RWMutex
	entries []models.AuditEntry
}

// NewLog creates an empty audit log
func NewLog() *Log {
	return &Log{}
}

// Record builds an entry for one mutating operation and prepends it
func (l *Log) Record(jobID string, action models.AuditAction, description, recruiter string) models.AuditEntry {
	entry := models.AuditEntry{
		ID:          utils.GenerateID(),
		JobID:       jobID,
		Action:      action,
		Description: description,
		Timestamp:   time.Now().UTC(),
		Recruiter:   recruiter,
	}
	l.Append(entry)
	return entry
}

// Append prepends an entry so the newest mutation is listed first
func (l *Log) Append(entry models.AuditEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]models.AuditEntry{entry}, l.entries...)
}

// Entries returns a copy of the log, newest first
func (l *Log) Entries() []models.AuditEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.AuditEntry(nil), l.entries...)
}

// Len returns the number of recorded entries
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
