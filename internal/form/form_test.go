package form

import (
	"encoding/json"
	"testing"

	"hireboard/pkg/models"
)

func seedRequired(t *testing.T, f *Form) {
	t.Helper()
	if err := f.UpdateField("jobTitle", json.RawMessage(`{"value":"swe","label":"Software Engineer"}`)); err != nil {
		t.Fatalf("set jobTitle: %v", err)
	}
	if err := f.UpdateField("jobLocation", json.RawMessage(`[{"value":"1","label":"Berlin"}]`)); err != nil {
		t.Fatalf("set jobLocation: %v", err)
	}
}

func TestNewFormDefaults(t *testing.T) {
	f := New(false)
	view := f.View()

	if view.Editing {
		t.Error("blank form should not be editing")
	}
	if view.Draft.Posting.Status != models.StatusActive {
		t.Errorf("default status = %q, want %q", view.Draft.Posting.Status, models.StatusActive)
	}
	if view.Draft.Posting.SalaryRange.Currency != "USD" {
		t.Errorf("default currency = %q, want USD", view.Draft.Posting.SalaryRange.Currency)
	}
	if !view.Draft.Posting.SalaryRange.IsVisible {
		t.Error("salary should be visible by default")
	}
}

func TestUpdateField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{name: "string field", field: "companyName", value: `"Acme"`},
		{name: "status", field: "status", value: `"closed"`},
		{name: "unknown status", field: "status", value: `"archived"`, wantErr: true},
		{name: "unknown field", field: "nope", value: `"x"`, wantErr: true},
		{name: "non-string scalar", field: "companyName", value: `42`, wantErr: true},
		{name: "clear job title", field: "jobTitle", value: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(false)
			err := f.UpdateField(tt.field, json.RawMessage(tt.value))
			if (err != nil) != tt.wantErr {
				t.Errorf("UpdateField(%s) error = %v, wantErr %v", tt.field, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateSalaryEmptyStringClearsBound(t *testing.T) {
	f := New(false)

	if err := f.UpdateSalary("min", json.RawMessage(`90000`)); err != nil {
		t.Fatalf("set min: %v", err)
	}
	if min := f.View().Draft.Posting.SalaryRange.Min; min == nil || *min != 90000 {
		t.Fatalf("min = %v, want 90000", min)
	}

	if err := f.UpdateSalary("min", json.RawMessage(`""`)); err != nil {
		t.Fatalf("clear min: %v", err)
	}
	if min := f.View().Draft.Posting.SalaryRange.Min; min != nil {
		t.Errorf("min = %v, want nil after clearing", *min)
	}
}

func TestUpdateSalaryNumericString(t *testing.T) {
	f := New(false)
	if err := f.UpdateSalary("max", json.RawMessage(`"120000"`)); err != nil {
		t.Fatalf("set max from string: %v", err)
	}
	if max := f.View().Draft.Posting.SalaryRange.Max; max == nil || *max != 120000 {
		t.Fatalf("max = %v, want 120000", max)
	}

	if err := f.UpdateSalary("max", json.RawMessage(`"lots"`)); err == nil {
		t.Error("non-numeric string should be rejected")
	}
}

func TestCustomFieldListEditing(t *testing.T) {
	f := New(false)

	f.AddCustomField()
	f.AddCustomField()
	f.UpdateCustomField(0, "key", "Travel")
	f.UpdateCustomField(0, "value", "10%")
	f.UpdateCustomField(1, "key", "left empty")

	// Out-of-range edits are silent no-ops
	f.UpdateCustomField(5, "key", "ignored")
	f.RemoveCustomField(-1)

	view := f.View()
	if len(view.Draft.CustomFields) != 2 {
		t.Fatalf("custom fields = %d, want 2", len(view.Draft.CustomFields))
	}
	if view.Draft.CustomFields[0].Key != "Travel" {
		t.Errorf("custom field key = %q, want Travel", view.Draft.CustomFields[0].Key)
	}

	f.RemoveCustomField(0)
	if got := len(f.View().Draft.CustomFields); got != 1 {
		t.Errorf("custom fields after remove = %d, want 1", got)
	}
}

func TestSubmitRequiresTitleAndLocation(t *testing.T) {
	f := New(false)
	if _, err := f.Submit(); err == nil {
		t.Fatal("empty form should not submit")
	}

	seedRequired(t, f)
	if _, err := f.Submit(); err != nil {
		t.Fatalf("filled form failed to submit: %v", err)
	}
}

func TestSubmitStrictMode(t *testing.T) {
	f := New(true)
	seedRequired(t, f)

	if _, err := f.Submit(); err == nil {
		t.Fatal("strict mode should require company name and website")
	}

	f.UpdateField("companyName", json.RawMessage(`"Acme"`))
	f.UpdateField("companyWebsite", json.RawMessage(`"https://acme.example"`))
	if _, err := f.Submit(); err != nil {
		t.Fatalf("strict submit failed: %v", err)
	}
}

func TestSubmitCollapsesCustomFields(t *testing.T) {
	f := New(false)
	seedRequired(t, f)

	f.AddCustomField()
	f.UpdateCustomField(0, "key", "Travel")
	f.UpdateCustomField(0, "value", "10%")
	f.AddCustomField() // stays empty, must be dropped

	finished, err := f.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(finished.CustomFields) != 1 || finished.CustomFields["Travel"] != "10%" {
		t.Errorf("custom fields = %v, want map[Travel:10%%]", finished.CustomFields)
	}
	if finished.SalaryRange.Formatted != "USD 0-0" {
		t.Errorf("formatted salary = %q, want %q", finished.SalaryRange.Formatted, "USD 0-0")
	}
}

func TestSubmitFailureKeepsWorkingCopy(t *testing.T) {
	f := New(false)
	f.UpdateField("companyName", json.RawMessage(`"Acme"`))

	if _, err := f.Submit(); err == nil {
		t.Fatal("expected validation failure")
	}

	if f.View().Draft.Posting.CompanyName != "Acme" {
		t.Error("failed submit must not touch the working copy")
	}
}

func TestPreviewUsesFlatSalary(t *testing.T) {
	f := New(false)
	seedRequired(t, f)
	f.UpdateSalary("min", json.RawMessage(`90000`))

	preview, err := f.Preview()
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if preview.SalaryRange != "USD 90000-" {
		t.Errorf("preview salary = %q, want %q", preview.SalaryRange, "USD 90000-")
	}
}

func TestSaveAsTemplate(t *testing.T) {
	f := New(false)
	if _, err := f.SaveAsTemplate(); err == nil {
		t.Fatal("template without a job title should be rejected")
	}

	seedRequired(t, f)
	tpl, err := f.SaveAsTemplate()
	if err != nil {
		t.Fatalf("save template: %v", err)
	}
	if tpl.ID == "" {
		t.Error("template must get a fresh id")
	}
	if tpl.Draft.Posting.JobTitle.Label != "Software Engineer" {
		t.Errorf("template title = %q", tpl.Draft.Posting.JobTitle.Label)
	}
}

func TestForEditingExpandsCustomFields(t *testing.T) {
	posting := models.JobPosting{
		ID:           "job-1",
		JobTitle:     &models.Option{Value: "swe", Label: "Software Engineer"},
		JobLocation:  []models.Option{{Value: "1", Label: "Berlin"}},
		CustomFields: models.CustomFieldMap{"b": "2", "a": "1"},
	}

	f := ForEditing(posting, false)

	if !f.Editing() || f.EditingID() != "job-1" {
		t.Error("editing context not captured")
	}
	fields := f.View().Draft.CustomFields
	if len(fields) != 2 || fields[0].Key != "a" || fields[1].Key != "b" {
		t.Errorf("expanded custom fields = %v, want sorted [a b]", fields)
	}
}

func TestFromTemplateDoesNotMutateTemplate(t *testing.T) {
	f := New(false)
	seedRequired(t, f)
	tpl, err := f.SaveAsTemplate()
	if err != nil {
		t.Fatalf("save template: %v", err)
	}

	g := FromTemplate(tpl, false)
	g.UpdateField("jobTitle", json.RawMessage(`{"value":"pm","label":"Product Manager"}`))

	if tpl.Draft.Posting.JobTitle.Label != "Software Engineer" {
		t.Error("editing a form seeded from a template must not change the template")
	}
	if !g.View().FromTemplate {
		t.Error("form should report its template origin")
	}
}
