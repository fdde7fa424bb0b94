package models

// Draft is the form controller's private working copy of a posting. Custom
// fields are held as an ordered list while editing; everything else shares the
// JobPosting shape. The list and the stored mapping are convertible in both
// directions via CollapseCustomFields / ExpandCustomFields.
type Draft struct {
	Posting      JobPosting    `json:"posting"`
	CustomFields []CustomField `json:"customFields"`
}

// NewDraft returns the empty default working copy used when a form is opened
// without a seed
func NewDraft() Draft {
	return Draft{
		Posting: JobPosting{
			JobLocation:     []Option{},
			TechnicalSkills: []Option{},
			SalaryRange:     SalaryRange{Currency: "USD", IsVisible: true},
			Status:          StatusActive,
		},
		CustomFields: []CustomField{},
	}
}

// Clone returns a deep copy of the draft
func (d Draft) Clone() Draft {
	clone := Draft{Posting: d.Posting.Clone()}
	if d.CustomFields != nil {
		clone.CustomFields = append([]CustomField(nil), d.CustomFields...)
	}
	return clone
}

// Template is an immutable reusable snapshot of a form working copy. It is
// only ever read back to seed a new form.
type Template struct {
	ID    string `json:"id"`
	Draft Draft  `json:"draft"`
}

// TitleLabel returns the display label of the templated role
func (t Template) TitleLabel() string {
	return t.Draft.Posting.TitleLabel()
}
