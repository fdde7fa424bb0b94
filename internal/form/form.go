package form

import (
	"encoding/json"
	"strconv"

	"hireboard/pkg/models"
	"hireboard/pkg/utils"
)

// Form owns the transient edit state for one posting: a private working copy
// seeded from nothing, a template, or an existing posting. It never mutates
// its seed; the finished posting is handed back to the caller on submit.
type Form struct {
	draft        models.Draft
	editing      bool
	editingID    string
	fromTemplate bool
	strict       bool
}

// New opens a blank form
func New(strict bool) *Form {
	return &Form{
		draft:  models.NewDraft(),
		strict: strict,
	}
}

// FromTemplate opens a form pre-filled from a saved template
func FromTemplate(t models.Template, strict bool) *Form {
	return &Form{
		draft:        t.Draft.Clone(),
		fromTemplate: true,
		strict:       strict,
	}
}

// ForEditing opens a form over an existing posting. The stored custom-field
// mapping is normalized back to list form so pairs can be edited in place.
func ForEditing(p models.JobPosting, strict bool) *Form {
	draft := models.Draft{
		Posting:      p.Clone(),
		CustomFields: models.ExpandCustomFields(p.CustomFields),
	}
	return &Form{
		draft:     draft,
		editing:   true,
		editingID: p.ID,
		strict:    strict,
	}
}

// Editing reports whether the form edits an existing posting
func (f *Form) Editing() bool {
	return f.editing
}

// EditingID returns the identifier of the posting being edited
func (f *Form) EditingID() string {
	return f.editingID
}

// View returns the form's working copy for the host to render
func (f *Form) View() models.FormView {
	return models.FormView{
		Draft:        f.draft.Clone(),
		Editing:      f.editing,
		EditingID:    f.editingID,
		FromTemplate: f.fromTemplate,
	}
}

// UpdateField replaces one scalar or selection field of the working copy.
// This is a pure merge; required-field checks happen only at the submission
// boundary.
func (f *Form) UpdateField(name string, value json.RawMessage) error {
	p := &f.draft.Posting

	switch name {
	case "jobTitle":
		return decodeOptionPtr(value, &p.JobTitle)
	case "companyLocation":
		return decodeOptionPtr(value, &p.CompanyLocation)
	case "jobLocation":
		return decodeOptions(value, &p.JobLocation)
	case "technicalSkills":
		return decodeOptions(value, &p.TechnicalSkills)
	case "status":
		var status models.PostingStatus
		if err := json.Unmarshal(value, &status); err != nil {
			return utils.NewBadRequestError("status must be a string")
		}
		if !status.Valid() {
			return utils.NewBadRequestError("unknown posting status: " + string(status))
		}
		p.Status = status
		return nil
	}

	target := f.stringField(name)
	if target == nil {
		return utils.NewBadRequestError("unknown form field: " + name)
	}

	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return utils.NewBadRequestError("field " + name + " must be a string")
	}
	*target = text
	return nil
}

// UpdateSalary updates one part of the nested salary block. Min and max
// accept a number or an empty string; the empty string clears the bound
// instead of coercing it to zero.
func (f *Form) UpdateSalary(part string, value json.RawMessage) error {
	salary := &f.draft.Posting.SalaryRange

	switch part {
	case "currency":
		var code string
		if err := json.Unmarshal(value, &code); err != nil {
			return utils.NewBadRequestError("currency must be a string")
		}
		salary.Currency = code
	case "min":
		amount, err := decodeAmount(value)
		if err != nil {
			return err
		}
		salary.Min = amount
	case "max":
		amount, err := decodeAmount(value)
		if err != nil {
			return err
		}
		salary.Max = amount
	case "isVisible":
		var visible bool
		if err := json.Unmarshal(value, &visible); err != nil {
			return utils.NewBadRequestError("isVisible must be a boolean")
		}
		salary.IsVisible = visible
	default:
		return utils.NewBadRequestError("unknown salary part: " + part)
	}
	return nil
}

// AddCustomField appends an empty {key, value} pair to the working list
func (f *Form) AddCustomField() {
	f.draft.CustomFields = append(f.draft.CustomFields, models.CustomField{})
}

// UpdateCustomField rewrites the key or value of the pair at index. An
// out-of-range index is a no-op.
func (f *Form) UpdateCustomField(index int, field, text string) {
	if index < 0 || index >= len(f.draft.CustomFields) {
		return
	}
	switch field {
	case "key":
		f.draft.CustomFields[index].Key = text
	case "value":
		f.draft.CustomFields[index].Value = text
	}
}

// RemoveCustomField deletes the pair at index. An out-of-range index is a
// no-op.
func (f *Form) RemoveCustomField(index int) {
	if index < 0 || index >= len(f.draft.CustomFields) {
		return
	}
	f.draft.CustomFields = append(f.draft.CustomFields[:index], f.draft.CustomFields[index+1:]...)
}

// Submit validates the working copy and returns the finished posting: salary
// display string recomputed and custom fields collapsed to mapping form. On
// validation failure the working copy is left untouched so the user can
// correct it and retry.
func (f *Form) Submit() (models.JobPosting, error) {
	if err := f.validate(); err != nil {
		return models.JobPosting{}, err
	}

	finished := f.draft.Posting.Clone()
	finished.SalaryRange.Formatted = finished.SalaryRange.Format()
	finished.CustomFields = models.CollapseCustomFields(f.draft.CustomFields)
	return finished, nil
}

// Preview validates like Submit but produces the read-only projection with a
// flat salary string. The form stays open.
func (f *Form) Preview() (models.PostingPreview, error) {
	if err := f.validate(); err != nil {
		return models.PostingPreview{}, err
	}

	posting := f.draft.Posting.Clone()
	posting.CustomFields = models.CollapseCustomFields(f.draft.CustomFields)
	return models.NewPreview(posting), nil
}

// SaveAsTemplate snapshots the working copy under a fresh template id. Only
// the job title is required here; the caller decides whether to close the
// form afterwards.
func (f *Form) SaveAsTemplate() (models.Template, error) {
	if f.draft.Posting.JobTitle == nil {
		return models.Template{}, utils.NewValidationError("job title is required to save a template")
	}

	return models.Template{
		ID:    utils.GenerateID(),
		Draft: f.draft.Clone(),
	}, nil
}

// validate enforces the submission-boundary invariants
func (f *Form) validate() error {
	p := &f.draft.Posting
	if p.JobTitle == nil || len(p.JobLocation) == 0 {
		return utils.NewValidationError("job title and at least one job location are required")
	}
	if f.strict && (p.CompanyName == "" || p.CompanyWebsite == "") {
		return utils.NewValidationError("company name and website are required")
	}
	return nil
}

// stringField maps a form field name to its working-copy string field
func (f *Form) stringField(name string) *string {
	p := &f.draft.Posting
	switch name {
	case "jobType":
		return &p.JobType
	case "department":
		return &p.Department
	case "jobLevel":
		return &p.JobLevel
	case "jobDescription":
		return &p.JobDescription
	case "jobResponsibilities":
		return &p.JobResponsibilities
	case "keySkillsRequired":
		return &p.KeySkillsRequired
	case "preferredQualifications":
		return &p.PreferredQualifications
	case "minimumExperienceRequired":
		return &p.MinimumExperienceRequired
	case "educationRequirements":
		return &p.EducationRequirements
	case "certificationsRequired":
		return &p.CertificationsRequired
	case "companyName":
		return &p.CompanyName
	case "companyWebsite":
		return &p.CompanyWebsite
	case "companyLogo":
		return &p.CompanyLogo
	case "companySize":
		return &p.CompanySize
	case "applicationDeadline":
		return &p.ApplicationDeadline
	case "recruiterName":
		return &p.RecruiterName
	case "recruiterContactEmail":
		return &p.RecruiterContactEmail
	case "recruiterContactPhoneNumber":
		return &p.RecruiterContactPhoneNumber
	case "languagesRequired":
		return &p.LanguagesRequired
	case "benefitsAndPerks":
		return &p.BenefitsAndPerks
	case "workingHours":
		return &p.WorkingHours
	case "interviewProcessDescription":
		return &p.InterviewProcessDescription
	case "backgroundCheckRequirements":
		return &p.BackgroundCheckRequirements
	}
	return nil
}

func decodeOptionPtr(value json.RawMessage, target **models.Option) error {
	var opt *models.Option
	if len(value) > 0 {
		if err := json.Unmarshal(value, &opt); err != nil {
			return utils.NewBadRequestError("expected a {value, label} option or null")
		}
	}
	*target = opt
	return nil
}

func decodeOptions(value json.RawMessage, target *[]models.Option) error {
	var opts []models.Option
	if len(value) > 0 {
		if err := json.Unmarshal(value, &opts); err != nil {
			return utils.NewBadRequestError("expected a list of {value, label} options")
		}
	}
	if opts == nil {
		opts = []models.Option{}
	}
	*target = opts
	return nil
}

// decodeAmount accepts a JSON number or an empty string; the empty string
// means "unset"
func decodeAmount(value json.RawMessage) (*float64, error) {
	var number float64
	if err := json.Unmarshal(value, &number); err == nil {
		return &number, nil
	}

	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return nil, utils.NewBadRequestError("salary bounds must be a number or an empty string")
	}
	if text == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, utils.NewBadRequestError("salary bounds must be numeric")
	}
	return &parsed, nil
}
