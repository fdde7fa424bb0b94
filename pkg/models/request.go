package models

import "encoding/json"

// UpdateFieldRequest replaces one scalar or selection field of the form's
// working copy. Value is decoded per field name by the form controller.
type UpdateFieldRequest struct {
	Name  string          `json:"name" validate:"required"`
	Value json.RawMessage `json:"value"`
}

// UpdateSalaryRequest updates one part of the nested salary block. Numeric
// parts accept either a number or an empty string (which clears the bound).
type UpdateSalaryRequest struct {
	Part  string          `json:"part" validate:"required,oneof=currency min max isVisible"`
	Value json.RawMessage `json:"value"`
}

// UpdateCustomFieldRequest rewrites the key or value of one custom-field list
// entry
type UpdateCustomFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=key value"`
	Text  string `json:"text"`
}

// SubmitRequest finalizes the form either as a draft or a published posting
type SubmitRequest struct {
	IsDraft bool `json:"isDraft"`
}

// SelectTemplateRequest picks a template in the template picker. An empty
// TemplateID opens a blank form.
type SelectTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

// ChangeStatusRequest moves a posting to a new status
type ChangeStatusRequest struct {
	Status PostingStatus `json:"status" validate:"required,posting_status"`
}

// SearchRequest sets the dashboard's title search term
type SearchRequest struct {
	Term string `json:"term"`
}

// FilterRequest sets the dashboard's status filter ("all" or a posting status)
type FilterRequest struct {
	Status string `json:"status" validate:"required,status_filter"`
}

// PageRequest moves the dashboard to a 1-based page
type PageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

// CandidateStatusRequest updates the review status of one candidate
type CandidateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
