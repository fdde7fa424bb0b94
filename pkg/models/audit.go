package models

import "time"

// AuditAction identifies the kind of mutation recorded by an audit entry
type AuditAction string

const (
	ActionCreation     AuditAction = "Creation"
	ActionEdit         AuditAction = "Edit"
	ActionDeletion     AuditAction = "Deletion"
	ActionDuplication  AuditAction = "Duplication"
	ActionStatusChange AuditAction = "Status Change"
)

// AuditEntry is an immutable record of one mutating operation on the posting
// collection. JobID may dangle once the posting it names has been deleted.
type AuditEntry struct {
	ID          string      `json:"id"`
	JobID       string      `json:"jobId"`
	Action      AuditAction `json:"action"`
	Description string      `json:"description"`
	Timestamp   time.Time   `json:"timestamp"`
	Recruiter   string      `json:"recruiter"`
}
