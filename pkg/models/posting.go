package models

import (
	"fmt"
	"sort"
	"strconv"
)

// PostingStatus represents the lifecycle status of a job posting
type PostingStatus string

const (
	StatusActive   PostingStatus = "active"
	StatusInactive PostingStatus = "inactive"
	StatusClosed   PostingStatus = "closed"
	StatusDraft    PostingStatus = "draft"
)

// Valid reports whether the status is one of the known posting statuses
func (s PostingStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusClosed, StatusDraft:
		return true
	}
	return false
}

// Option represents a {value, label} selection pair used for reference-data
// backed fields (job title, cities, skills)
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SalaryRange represents the nested salary block of a posting. Min and Max are
// pointers so an empty input stays empty instead of collapsing to zero.
type SalaryRange struct {
	Currency  string   `json:"currency"`
	Min       *float64 `json:"min"`
	Max       *float64 `json:"max"`
	IsVisible bool     `json:"isVisible"`
	Formatted string   `json:"formatted,omitempty"`
}

// Format derives the display string "<currency> <min>-<max>", substituting "0"
// for absent bounds. Recomputed at every submission, never hand-edited.
func (s SalaryRange) Format() string {
	return fmt.Sprintf("%s %s-%s", s.Currency, amountOrZero(s.Min), amountOrZero(s.Max))
}

// FormatFlat is the preview rendition of the range: absent bounds stay blank
func (s SalaryRange) FormatFlat() string {
	return fmt.Sprintf("%s %s-%s", s.Currency, amountOrBlank(s.Min), amountOrBlank(s.Max))
}

func amountOrZero(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func amountOrBlank(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// CustomField is one {key, value} pair of the form's transient custom-field
// list. The list form tolerates duplicate and temporarily empty keys so the
// user can edit pairs in place.
type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CustomFieldMap is the at-rest representation of custom fields on a stored
// posting
type CustomFieldMap map[string]string

// CollapseCustomFields converts the form's ordered list into the stored
// mapping. Entries with an empty key or empty value are dropped; a duplicated
// key keeps its last value.
func CollapseCustomFields(fields []CustomField) CustomFieldMap {
	collapsed := make(CustomFieldMap)
	for _, f := range fields {
		if f.Key != "" && f.Value != "" {
			collapsed[f.Key] = f.Value
		}
	}
	return collapsed
}

// ExpandCustomFields converts a stored mapping back into list form for
// editing, one entry per key. Keys are sorted so repeated expansions are
// stable.
func ExpandCustomFields(m CustomFieldMap) []CustomField {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]CustomField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, CustomField{Key: k, Value: m[k]})
	}
	return fields
}

// JobPosting represents one recruiting listing as held in the dashboard
// collection and in durable storage
type JobPosting struct {
	ID                          string         `json:"id"`
	JobTitle                    *Option        `json:"jobTitle"`
	JobLocation                 []Option       `json:"jobLocation"`
	JobType                     string         `json:"jobType"`
	Department                  string         `json:"department"`
	JobLevel                    string         `json:"jobLevel"`
	SalaryRange                 SalaryRange    `json:"salaryRange"`
	JobDescription              string         `json:"jobDescription"`
	JobResponsibilities         string         `json:"jobResponsibilities"`
	KeySkillsRequired           string         `json:"keySkillsRequired"`
	PreferredQualifications     string         `json:"preferredQualifications"`
	MinimumExperienceRequired   string         `json:"minimumExperienceRequired"`
	EducationRequirements       string         `json:"educationRequirements"`
	CertificationsRequired      string         `json:"certificationsRequired"`
	CompanyName                 string         `json:"companyName"`
	CompanyWebsite              string         `json:"companyWebsite"`
	CompanyLogo                 string         `json:"companyLogo"`
	CompanySize                 string         `json:"companySize"`
	CompanyLocation             *Option        `json:"companyLocation"`
	ApplicationDeadline         string         `json:"applicationDeadline"`
	RecruiterName               string         `json:"recruiterName"`
	RecruiterContactEmail       string         `json:"recruiterContactEmail"`
	RecruiterContactPhoneNumber string         `json:"recruiterContactPhoneNumber"`
	TechnicalSkills             []Option       `json:"technicalSkills"`
	LanguagesRequired           string         `json:"languagesRequired"`
	BenefitsAndPerks            string         `json:"benefitsAndPerks"`
	WorkingHours                string         `json:"workingHours"`
	InterviewProcessDescription string         `json:"interviewProcessDescription"`
	BackgroundCheckRequirements string         `json:"backgroundCheckRequirements"`
	Status                      PostingStatus  `json:"status"`
	CustomFields                CustomFieldMap `json:"customFields"`
}

// TitleLabel returns the display label of the posting's role, or "" when the
// title has not been selected yet
func (p *JobPosting) TitleLabel() string {
	if p.JobTitle == nil {
		return ""
	}
	return p.JobTitle.Label
}

// Clone returns a deep copy of the posting. Nested slices, pointers and the
// custom-field map are copied so mutations of the clone never leak back.
func (p JobPosting) Clone() JobPosting {
	clone := p

	if p.JobTitle != nil {
		title := *p.JobTitle
		clone.JobTitle = &title
	}
	if p.CompanyLocation != nil {
		loc := *p.CompanyLocation
		clone.CompanyLocation = &loc
	}
	if p.SalaryRange.Min != nil {
		min := *p.SalaryRange.Min
		clone.SalaryRange.Min = &min
	}
	if p.SalaryRange.Max != nil {
		max := *p.SalaryRange.Max
		clone.SalaryRange.Max = &max
	}
	if p.JobLocation != nil {
		clone.JobLocation = append([]Option(nil), p.JobLocation...)
	}
	if p.TechnicalSkills != nil {
		clone.TechnicalSkills = append([]Option(nil), p.TechnicalSkills...)
	}
	if p.CustomFields != nil {
		clone.CustomFields = make(CustomFieldMap, len(p.CustomFields))
		for k, v := range p.CustomFields {
			clone.CustomFields[k] = v
		}
	}

	return clone
}

// PostingPreview is the read-only projection of a posting: the salary block is
// flattened to a display string and custom fields stay in mapping form
type PostingPreview struct {
	JobPosting
	SalaryRange string `json:"salaryRange"`
}

// NewPreview builds the preview projection from a posting
func NewPreview(p JobPosting) PostingPreview {
	return PostingPreview{
		JobPosting:  p.Clone(),
		SalaryRange: p.SalaryRange.FormatFlat(),
	}
}
