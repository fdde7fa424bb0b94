package models

import "time"

// DashboardView is the derived view of the dashboard returned to the host
// view layer: the current page of the filtered collection plus the state the
// controls render from.
type DashboardView struct {
	Postings      []JobPosting    `json:"postings"`
	TotalFiltered int             `json:"totalFiltered"`
	TotalPostings int             `json:"totalPostings"`
	Page          int             `json:"page"`
	TotalPages    int             `json:"totalPages"`
	PageSize      int             `json:"pageSize"`
	SearchTerm    string          `json:"searchTerm"`
	FilterStatus  string          `json:"filterStatus"`
	Mode          string          `json:"mode"`
	Preview       *PostingPreview `json:"preview,omitempty"`
	TemplateCount int             `json:"templateCount"`
}

// FormView exposes the form's working copy and context to its host
type FormView struct {
	Draft        Draft  `json:"draft"`
	Editing      bool   `json:"editing"`
	EditingID    string `json:"editingId,omitempty"`
	FromTemplate bool   `json:"fromTemplate"`
}

// SubmitResponse acknowledges a successful form submission
type SubmitResponse struct {
	Posting JobPosting `json:"posting"`
	IsDraft bool       `json:"isDraft"`
	Created bool       `json:"created"`
}

// CitySearchResponse carries the bounded result of an asynchronous city lookup
type CitySearchResponse struct {
	Query     string   `json:"query"`
	Options   []Option `json:"options"`
	Truncated bool     `json:"truncated"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
