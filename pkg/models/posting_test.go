package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestSalaryRangeFormat(t *testing.T) {
	tests := []struct {
		name   string
		salary SalaryRange
		want   string
	}{
		{
			name:   "both bounds set",
			salary: SalaryRange{Currency: "USD", Min: floatPtr(90000), Max: floatPtr(120000)},
			want:   "USD 90000-120000",
		},
		{
			name:   "missing bounds fall back to zero",
			salary: SalaryRange{Currency: "EUR"},
			want:   "EUR 0-0",
		},
		{
			name:   "only min set",
			salary: SalaryRange{Currency: "GBP", Min: floatPtr(50000)},
			want:   "GBP 50000-0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.salary.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSalaryRangeFormatFlat(t *testing.T) {
	salary := SalaryRange{Currency: "USD", Max: floatPtr(120000)}
	if got := salary.FormatFlat(); got != "USD -120000" {
		t.Errorf("FormatFlat() = %q, want %q", got, "USD -120000")
	}

	empty := SalaryRange{Currency: "USD"}
	if got := empty.FormatFlat(); got != "USD -" {
		t.Errorf("FormatFlat() = %q, want %q", got, "USD -")
	}
}

func TestCollapseCustomFields(t *testing.T) {
	fields := []CustomField{
		{Key: "Visa Sponsorship", Value: "Yes"},
		{Key: "", Value: "orphan value"},
		{Key: "orphan key", Value: ""},
		{Key: "Travel", Value: "10%"},
		{Key: "Travel", Value: "20%"},
	}

	collapsed := CollapseCustomFields(fields)

	if len(collapsed) != 2 {
		t.Fatalf("collapsed has %d entries, want 2", len(collapsed))
	}
	if collapsed["Visa Sponsorship"] != "Yes" {
		t.Errorf("Visa Sponsorship = %q, want %q", collapsed["Visa Sponsorship"], "Yes")
	}
	if collapsed["Travel"] != "20%" {
		t.Errorf("duplicate key kept %q, want last value %q", collapsed["Travel"], "20%")
	}
}

func TestExpandCustomFieldsIsSorted(t *testing.T) {
	m := CustomFieldMap{"b": "2", "a": "1", "c": "3"}

	fields := ExpandCustomFields(m)

	if len(fields) != 3 {
		t.Fatalf("expanded has %d entries, want 3", len(fields))
	}
	for i, want := range []string{"a", "b", "c"} {
		if fields[i].Key != want {
			t.Errorf("fields[%d].Key = %q, want %q", i, fields[i].Key, want)
		}
	}
}

func TestJobPostingCloneIsDeep(t *testing.T) {
	original := JobPosting{
		ID:       "job-1",
		JobTitle: &Option{Value: "swe", Label: "Software Engineer"},
		JobLocation: []Option{
			{Value: "1", Label: "Berlin"},
		},
		SalaryRange:  SalaryRange{Currency: "USD", Min: floatPtr(1000)},
		CustomFields: CustomFieldMap{"Travel": "10%"},
	}

	clone := original.Clone()
	clone.JobTitle.Label = "changed"
	clone.JobLocation[0].Label = "changed"
	*clone.SalaryRange.Min = 9999
	clone.CustomFields["Travel"] = "changed"

	if original.JobTitle.Label != "Software Engineer" {
		t.Error("clone shares JobTitle pointer with original")
	}
	if original.JobLocation[0].Label != "Berlin" {
		t.Error("clone shares JobLocation slice with original")
	}
	if *original.SalaryRange.Min != 1000 {
		t.Error("clone shares salary bound pointer with original")
	}
	if original.CustomFields["Travel"] != "10%" {
		t.Error("clone shares custom field map with original")
	}
}

func TestPostingStatusValid(t *testing.T) {
	for _, s := range []PostingStatus{StatusActive, StatusInactive, StatusClosed, StatusDraft} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if PostingStatus("archived").Valid() {
		t.Error("unknown status should not be valid")
	}
}

func TestPreviewFlattensSalary(t *testing.T) {
	posting := JobPosting{
		ID:          "job-1",
		JobTitle:    &Option{Value: "swe", Label: "Software Engineer"},
		SalaryRange: SalaryRange{Currency: "USD", Min: floatPtr(90000)},
	}

	preview := NewPreview(posting)

	raw, err := json.Marshal(preview)
	if err != nil {
		t.Fatalf("marshal preview: %v", err)
	}
	if !strings.Contains(string(raw), `"salaryRange":"USD 90000-"`) {
		t.Errorf("preview salaryRange not flattened: %s", raw)
	}
}
