package applications

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"hireboard/pkg/utils"
)

//go:embed data/candidates.json
var dataFS embed.FS

// Review statuses a candidate can move through
const (
	StatusUnderReview        = "Under Review"
	StatusInterviewScheduled = "Interview Scheduled"
	StatusHired              = "Hired"
	StatusRejected           = "Rejected"
)

var reviewStatuses = []string{
	StatusUnderReview,
	StatusInterviewScheduled,
	StatusHired,
	StatusRejected,
}

// Candidate is one applicant from the static candidate list
type Candidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Position    string   `json:"position"`
	Experience  string   `json:"experience"`
	Education   string   `json:"education"`
	Skills      []string `json:"skills"`
	ResumeURL   string   `json:"resumeUrl"`
	AppliedDate string   `json:"appliedDate"`
}

// CandidateReview is a candidate together with the session's review state
type CandidateReview struct {
	Candidate
	Status      string `json:"status"`
	Shortlisted bool   `json:"shortlisted"`
}

// Manager owns the session's candidate review state: a status per candidate
// (defaulting to "Under Review") and a shortlist toggle. The candidate list
// itself is read-only reference data.
type Manager struct {
	mu          sync.RWMutex
	candidates  []Candidate
	statuses    map[string]string
	shortlisted map[string]bool
}

// NewManager loads the embedded candidate list and initializes every
// candidate's status to "Under Review"
func NewManager() (*Manager, error) {
	raw, err := dataFS.ReadFile("data/candidates.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate data: %w", err)
	}

	var candidates []Candidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidate data: %w", err)
	}

	statuses := make(map[string]string, len(candidates))
	for _, c := range candidates {
		statuses[c.ID] = StatusUnderReview
	}

	return &Manager{
		candidates:  candidates,
		statuses:    statuses,
		shortlisted: make(map[string]bool),
	}, nil
}

// Candidates returns every candidate with its current review state
func (m *Manager) Candidates() []CandidateReview {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reviews := make([]CandidateReview, 0, len(m.candidates))
	for _, c := range m.candidates {
		reviews = append(reviews, CandidateReview{
			Candidate:   c,
			Status:      m.statuses[c.ID],
			Shortlisted: m.shortlisted[c.ID],
		})
	}
	return reviews
}

// UpdateStatus moves a candidate to a new review status
func (m *Manager) UpdateStatus(id, status string) error {
	if !utils.Contains(reviewStatuses, status) {
		return utils.NewBadRequestError("unknown review status: " + status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.statuses[id]; !ok {
		return utils.NewNotFoundError("candidate " + id)
	}
	m.statuses[id] = status
	return nil
}

// ToggleShortlist flips a candidate's shortlist flag and returns the new value
func (m *Manager) ToggleShortlist(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.statuses[id]; !ok {
		return false, utils.NewNotFoundError("candidate " + id)
	}
	m.shortlisted[id] = !m.shortlisted[id]
	return m.shortlisted[id], nil
}
