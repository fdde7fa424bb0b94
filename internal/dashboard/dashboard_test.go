package dashboard_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"hireboard/internal/audit"
	"hireboard/internal/config"
	"hireboard/internal/dashboard"
	"hireboard/internal/store"
	"hireboard/pkg/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Dashboard.PageSize = 10
	cfg.Dashboard.Recruiter = "Current User"
	return cfg
}

func newTestDashboard(t *testing.T) (*dashboard.Dashboard, *store.MemoryStore, *audit.Log) {
	t.Helper()
	st := store.NewMemoryStore()
	trail := audit.NewLog()
	d := dashboard.New(testConfig(), st, trail)
	if err := d.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	return d, st, trail
}

func mustSet(t *testing.T, d *dashboard.Dashboard, field, value string) {
	t.Helper()
	if err := d.UpdateFormField(field, json.RawMessage(value)); err != nil {
		t.Fatalf("set %s: %v", field, err)
	}
}

// createPosting drives the whole creation flow and returns the new posting
func createPosting(t *testing.T, d *dashboard.Dashboard, title string, isDraft bool) models.JobPosting {
	t.Helper()
	if err := d.OpenNewJobForm(); err != nil {
		t.Fatalf("open form: %v", err)
	}
	if d.Mode() == dashboard.ModeTemplatePicker {
		if err := d.SelectTemplate(""); err != nil {
			t.Fatalf("skip template picker: %v", err)
		}
	}
	mustSet(t, d, "jobTitle", fmt.Sprintf(`{"value":%q,"label":%q}`, title, title))
	mustSet(t, d, "jobLocation", `[{"value":"1","label":"Berlin"}]`)

	result, err := d.SubmitForm(context.Background(), isDraft)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := d.CloseConfirmation(); err != nil {
		t.Fatalf("close confirmation: %v", err)
	}
	return result.Posting
}

func TestCreatePrependsNewest(t *testing.T) {
	d, st, trail := newTestDashboard(t)

	first := createPosting(t, d, "First", false)
	second := createPosting(t, d, "Second", false)

	postings := d.Postings()
	if len(postings) != 2 {
		t.Fatalf("postings = %d, want 2", len(postings))
	}
	if postings[0].ID != second.ID || postings[1].ID != first.ID {
		t.Error("newest posting should be listed first")
	}
	if first.Status != models.StatusActive {
		t.Errorf("published status = %q, want active", first.Status)
	}
	if st.Saves() != 2 {
		t.Errorf("store saves = %d, want 2", st.Saves())
	}
	if trail.Len() != 2 {
		t.Errorf("audit entries = %d, want 2", trail.Len())
	}
}

func TestCreateDraftStatusOverridesForm(t *testing.T) {
	d, _, trail := newTestDashboard(t)

	posting := createPosting(t, d, "Drafted", true)
	if posting.Status != models.StatusDraft {
		t.Errorf("status = %q, want draft", posting.Status)
	}

	entries := trail.Entries()
	if entries[0].Action != models.ActionCreation {
		t.Errorf("audit action = %q, want %q", entries[0].Action, models.ActionCreation)
	}
	if entries[0].Description != "New job posting saved as draft" {
		t.Errorf("audit description = %q", entries[0].Description)
	}
}

func TestEditReplacesInPlace(t *testing.T) {
	d, _, trail := newTestDashboard(t)

	first := createPosting(t, d, "First", false)
	second := createPosting(t, d, "Second", false)

	if err := d.OpenEditJobForm(first.ID); err != nil {
		t.Fatalf("open edit: %v", err)
	}
	mustSet(t, d, "companyName", `"Acme"`)
	result, err := d.SubmitForm(context.Background(), false)
	if err != nil {
		t.Fatalf("submit edit: %v", err)
	}
	if result.Created {
		t.Error("edit must not report a creation")
	}

	postings := d.Postings()
	if postings[0].ID != second.ID || postings[1].ID != first.ID {
		t.Error("edit must preserve collection order")
	}
	if postings[1].CompanyName != "Acme" {
		t.Errorf("edited company = %q, want Acme", postings[1].CompanyName)
	}
	if trail.Entries()[0].Action != models.ActionEdit {
		t.Errorf("audit action = %q, want %q", trail.Entries()[0].Action, models.ActionEdit)
	}
}

func TestEditSubmitOfDeletedPostingFails(t *testing.T) {
	d, st, trail := newTestDashboard(t)
	posting := createPosting(t, d, "Short-lived", false)

	if err := d.OpenEditJobForm(posting.ID); err != nil {
		t.Fatalf("open edit: %v", err)
	}
	if err := d.Delete(context.Background(), posting.ID); err != nil {
		t.Fatalf("delete while editing: %v", err)
	}

	savesBefore := st.Saves()
	auditBefore := trail.Len()

	if _, err := d.SubmitForm(context.Background(), false); err == nil {
		t.Fatal("submitting an edit of a deleted posting must fail")
	}

	if len(d.Postings()) != 0 {
		t.Error("failed edit must not resurrect the posting")
	}
	if trail.Len() != auditBefore {
		t.Error("failed edit must not record an audit entry")
	}
	if st.Saves() != savesBefore {
		t.Error("failed edit must not persist")
	}
	if d.Mode() != dashboard.ModeForm {
		t.Error("failed edit must leave the form open")
	}
}

func TestDeleteUnknownIDRecordsNothing(t *testing.T) {
	d, st, trail := newTestDashboard(t)
	createPosting(t, d, "Only", false)

	savesBefore := st.Saves()
	auditBefore := trail.Len()

	if err := d.Delete(context.Background(), "missing"); err == nil {
		t.Fatal("deleting an unknown id must fail")
	}
	if st.Saves() != savesBefore {
		t.Error("failed delete must not persist")
	}
	if trail.Len() != auditBefore {
		t.Error("failed delete must not record an audit entry")
	}
}

func TestDeleteClosesMatchingPreview(t *testing.T) {
	d, _, trail := newTestDashboard(t)
	posting := createPosting(t, d, "Only", false)

	if _, err := d.OpenPreview(posting.ID); err != nil {
		t.Fatalf("open preview: %v", err)
	}
	if err := d.Delete(context.Background(), posting.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if d.View().Preview != nil {
		t.Error("preview of a deleted posting must close")
	}
	if trail.Entries()[0].Action != models.ActionDeletion {
		t.Errorf("audit action = %q, want %q", trail.Entries()[0].Action, models.ActionDeletion)
	}
}

func TestDuplicateAppendsWithFreshID(t *testing.T) {
	d, _, trail := newTestDashboard(t)

	original := createPosting(t, d, "Original", false)
	createPosting(t, d, "Second", false)

	duplicate, err := d.Duplicate(context.Background(), original.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}

	if duplicate.ID == original.ID {
		t.Error("duplicate must get a fresh id")
	}
	if duplicate.TitleLabel() != "Original" {
		t.Errorf("duplicate title = %q, want Original", duplicate.TitleLabel())
	}

	postings := d.Postings()
	if postings[len(postings)-1].ID != duplicate.ID {
		t.Error("duplicate must be appended at the end, not prepended")
	}

	entry := trail.Entries()[0]
	if entry.Action != models.ActionDuplication {
		t.Errorf("audit action = %q, want %q", entry.Action, models.ActionDuplication)
	}
	if entry.JobID != duplicate.ID {
		t.Error("audit entry must reference the new posting")
	}
}

func TestChangeStatus(t *testing.T) {
	d, _, trail := newTestDashboard(t)
	posting := createPosting(t, d, "Only", false)

	if err := d.ChangeStatus(context.Background(), posting.ID, "archived"); err == nil {
		t.Fatal("unknown status must be rejected")
	}
	if err := d.ChangeStatus(context.Background(), posting.ID, models.StatusClosed); err != nil {
		t.Fatalf("change status: %v", err)
	}

	if d.Postings()[0].Status != models.StatusClosed {
		t.Error("status change not applied")
	}
	entry := trail.Entries()[0]
	if entry.Action != models.ActionStatusChange || entry.Description != "Status changed to closed" {
		t.Errorf("audit entry = %+v", entry)
	}
}

func TestFilterAndSearchCombine(t *testing.T) {
	d, _, _ := newTestDashboard(t)

	createPosting(t, d, "Backend Engineer", false)
	createPosting(t, d, "Frontend Engineer", true)
	createPosting(t, d, "Designer", false)

	if err := d.SetFilterStatus("draft"); err != nil {
		t.Fatalf("set filter: %v", err)
	}
	d.SetSearchTerm("engineer")

	view := d.View()
	if view.TotalFiltered != 1 {
		t.Fatalf("filtered = %d, want 1", view.TotalFiltered)
	}
	if view.Postings[0].TitleLabel() != "Frontend Engineer" {
		t.Errorf("filtered posting = %q", view.Postings[0].TitleLabel())
	}
	if view.TotalPostings != 3 {
		t.Errorf("total postings = %d, want 3", view.TotalPostings)
	}
}

func TestSearchResetsPage(t *testing.T) {
	d, _, _ := newTestDashboard(t)
	for i := 0; i < 23; i++ {
		createPosting(t, d, fmt.Sprintf("Role %02d", i), false)
	}

	if err := d.SetPage(3); err != nil {
		t.Fatalf("set page: %v", err)
	}
	d.SetSearchTerm("role")

	if page := d.View().Page; page != 1 {
		t.Errorf("page after search = %d, want 1", page)
	}
}

func TestPagination(t *testing.T) {
	d, _, _ := newTestDashboard(t)
	for i := 0; i < 23; i++ {
		createPosting(t, d, fmt.Sprintf("Role %02d", i), false)
	}

	view := d.View()
	if view.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", view.TotalPages)
	}
	if len(view.Postings) != 10 {
		t.Errorf("page 1 size = %d, want 10", len(view.Postings))
	}

	if err := d.SetPage(3); err != nil {
		t.Fatalf("set page 3: %v", err)
	}
	if got := len(d.View().Postings); got != 3 {
		t.Errorf("page 3 size = %d, want 3", got)
	}

	if err := d.SetPage(4); err == nil {
		t.Error("page beyond the last must be rejected")
	}
	if err := d.SetPage(0); err == nil {
		t.Error("page 0 must be rejected")
	}
}

func TestModeTransitions(t *testing.T) {
	d, _, _ := newTestDashboard(t)

	if d.Mode() != dashboard.ModeIdle {
		t.Fatalf("initial mode = %v, want idle", d.Mode())
	}

	// No templates yet: straight to the form
	if err := d.OpenNewJobForm(); err != nil {
		t.Fatalf("open form: %v", err)
	}
	if d.Mode() != dashboard.ModeForm {
		t.Fatalf("mode = %v, want form", d.Mode())
	}

	// A second open while the form is up is a conflict
	if err := d.OpenNewJobForm(); err == nil {
		t.Error("opening a form over an open form must fail")
	}

	mustSet(t, d, "jobTitle", `{"value":"swe","label":"Software Engineer"}`)
	mustSet(t, d, "jobLocation", `[{"value":"1","label":"Berlin"}]`)
	if _, err := d.SubmitForm(context.Background(), false); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if d.Mode() != dashboard.ModeConfirmation {
		t.Fatalf("mode after submit = %v, want confirmation", d.Mode())
	}

	// From confirmation only CreateAnother re-enters the flow; direct opens
	// are rejected
	if err := d.OpenNewJobForm(); err == nil {
		t.Error("opening a new form from confirmation must fail")
	}
	if err := d.OpenEditJobForm(d.Postings()[0].ID); err == nil {
		t.Error("opening the edit form from confirmation must fail")
	}

	if err := d.CreateAnother(); err != nil {
		t.Fatalf("create another: %v", err)
	}
	if d.Mode() != dashboard.ModeForm {
		t.Fatalf("mode after create another = %v, want form", d.Mode())
	}

	if err := d.CloseForm(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	if d.Mode() != dashboard.ModeIdle {
		t.Fatalf("mode after close = %v, want idle", d.Mode())
	}
}

func TestTemplatePickerFlow(t *testing.T) {
	d, _, _ := newTestDashboard(t)

	// Save a template through the form
	if err := d.OpenNewJobForm(); err != nil {
		t.Fatalf("open form: %v", err)
	}
	mustSet(t, d, "jobTitle", `{"value":"swe","label":"Software Engineer"}`)
	tpl, err := d.SaveFormAsTemplate()
	if err != nil {
		t.Fatalf("save template: %v", err)
	}
	if err := d.CloseConfirmation(); err != nil {
		t.Fatalf("close confirmation: %v", err)
	}

	// With a template on file the picker opens first
	if err := d.OpenNewJobForm(); err != nil {
		t.Fatalf("reopen form: %v", err)
	}
	if d.Mode() != dashboard.ModeTemplatePicker {
		t.Fatalf("mode = %v, want template picker", d.Mode())
	}

	if err := d.SelectTemplate("missing"); err == nil {
		t.Error("unknown template id must be rejected")
	}
	if err := d.SelectTemplate(tpl.ID); err != nil {
		t.Fatalf("select template: %v", err)
	}

	view, err := d.FormView()
	if err != nil {
		t.Fatalf("form view: %v", err)
	}
	if !view.FromTemplate || view.Draft.Posting.JobTitle.Label != "Software Engineer" {
		t.Error("form not seeded from the template")
	}

	// Cancel path
	if err := d.CloseForm(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	if err := d.OpenNewJobForm(); err != nil {
		t.Fatalf("open picker again: %v", err)
	}
	if err := d.CancelTemplatePicker(); err != nil {
		t.Fatalf("cancel picker: %v", err)
	}
	if d.Mode() != dashboard.ModeIdle {
		t.Error("cancelling the picker should return to idle")
	}
}

func TestSubmitFailureKeepsFormOpen(t *testing.T) {
	d, st, trail := newTestDashboard(t)

	if err := d.OpenNewJobForm(); err != nil {
		t.Fatalf("open form: %v", err)
	}
	mustSet(t, d, "companyName", `"Acme"`)

	if _, err := d.SubmitForm(context.Background(), false); err == nil {
		t.Fatal("submit without required fields must fail")
	}

	if d.Mode() != dashboard.ModeForm {
		t.Error("failed submit must leave the form open")
	}
	view, err := d.FormView()
	if err != nil {
		t.Fatalf("form view: %v", err)
	}
	if view.Draft.Posting.CompanyName != "Acme" {
		t.Error("failed submit must keep the working copy")
	}
	if len(d.Postings()) != 0 || st.Saves() != 0 || trail.Len() != 0 {
		t.Error("failed submit must not touch collection, store or audit log")
	}
}

func TestHydrateFromStore(t *testing.T) {
	st := store.NewMemoryStore()
	seed := []models.JobPosting{{
		ID:       "job-1",
		JobTitle: &models.Option{Value: "swe", Label: "Software Engineer"},
		Status:   models.StatusActive,
	}}
	if err := st.Save(context.Background(), seed); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	d := dashboard.New(testConfig(), st, audit.NewLog())
	if err := d.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	if got := len(d.Postings()); got != 1 {
		t.Fatalf("hydrated postings = %d, want 1", got)
	}
}
