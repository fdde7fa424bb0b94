package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"hireboard/internal/audit"
	"hireboard/internal/config"
	"hireboard/internal/form"
	"hireboard/internal/logging"
	"hireboard/internal/store"
	"hireboard/pkg/models"
	"hireboard/pkg/utils"
)

// FilterAll matches every posting status
const FilterAll = "all"

// Dashboard owns the posting collection and its derived views for one
// recruiter session. It mediates every mutation, appends one audit entry per
// mutation, writes the collection through to the store on every change, and
// drives the form, template-picker, confirmation and preview lifecycles.
type Dashboard struct {
	mu        sync.RWMutex
	store     store.Store
	trail     *audit.Log
	templates *TemplateStore
	logger    logging.Logger

	pageSize  int
	recruiter string
	strict    bool

	postings     []models.JobPosting
	searchTerm   string
	filterStatus string
	currentPage  int

	mode    Mode
	form    *form.Form
	preview *models.PostingPreview
}

// New creates a dashboard over the given store and audit log
func New(cfg *config.Config, st store.Store, trail *audit.Log) *Dashboard {
	return &Dashboard{
		store:        st,
		trail:        trail,
		templates:    NewTemplateStore(),
		logger:       logging.GetGlobalLogger(),
		pageSize:     cfg.Dashboard.PageSize,
		recruiter:    cfg.Dashboard.Recruiter,
		strict:       cfg.Dashboard.StrictValidation,
		postings:     []models.JobPosting{},
		filterStatus: FilterAll,
		currentPage:  1,
		mode:         ModeIdle,
	}
}

// Hydrate loads the posting collection from the store. Called once at
// startup; a missing stored value yields an empty collection.
func (d *Dashboard) Hydrate(ctx context.Context) error {
	postings, err := d.store.Load(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.postings = postings
	return nil
}

// View returns the derived dashboard view: the current page of the filtered
// collection plus the state the controls render from
func (d *Dashboard) View() models.DashboardView {
	d.mu.RLock()
	defer d.mu.RUnlock()

	filtered := d.filtered()
	start := (d.currentPage - 1) * d.pageSize
	end := start + d.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	page := make([]models.JobPosting, 0, end-start)
	for _, p := range filtered[start:end] {
		page = append(page, p.Clone())
	}

	return models.DashboardView{
		Postings:      page,
		TotalFiltered: len(filtered),
		TotalPostings: len(d.postings),
		Page:          d.currentPage,
		TotalPages:    d.totalPages(len(filtered)),
		PageSize:      d.pageSize,
		SearchTerm:    d.searchTerm,
		FilterStatus:  d.filterStatus,
		Mode:          d.mode.String(),
		Preview:       d.preview,
		TemplateCount: d.templates.Len(),
	}
}

// Mode returns the current popup mode
func (d *Dashboard) Mode() Mode {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mode
}

// Postings returns a copy of the full collection, newest-created first
func (d *Dashboard) Postings() []models.JobPosting {
	d.mu.RLock()
	defer d.mu.RUnlock()

	postings := make([]models.JobPosting, 0, len(d.postings))
	for _, p := range d.postings {
		postings = append(postings, p.Clone())
	}
	return postings
}

// Templates returns the saved templates
func (d *Dashboard) Templates() []models.Template {
	return d.templates.List()
}

// SetSearchTerm sets the title search term and moves back to the first page
func (d *Dashboard) SetSearchTerm(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.searchTerm = term
	d.currentPage = 1
}

// SetFilterStatus sets the status filter ("all" or a posting status) and
// moves back to the first page
func (d *Dashboard) SetFilterStatus(status string) error {
	if status != FilterAll && !models.PostingStatus(status).Valid() {
		return utils.NewBadRequestError("unknown filter status: " + status)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.filterStatus = status
	d.currentPage = 1
	return nil
}

// SetPage moves to a 1-based page of the filtered set. Pages outside the
// navigable range are rejected, matching the disabled prev/next controls.
func (d *Dashboard) SetPage(page int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	last := d.totalPages(len(d.filtered()))
	if last == 0 {
		last = 1
	}
	if page < 1 || page > last {
		return utils.NewBadRequestError(fmt.Sprintf("page %d out of range 1-%d", page, last))
	}
	d.currentPage = page
	return nil
}

// OpenNewJobForm starts the creation flow: straight to a blank form when no
// templates exist, otherwise through the template picker
func (d *Dashboard) OpenNewJobForm() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode != ModeIdle {
		return utils.NewConflictError("cannot open a new job form while " + d.mode.String() + " is active")
	}

	if d.templates.Len() == 0 {
		d.mode = ModeForm
		d.form = form.New(d.strict)
	} else {
		d.mode = ModeTemplatePicker
	}
	return nil
}

// SelectTemplate resolves the template picker: a known template id seeds the
// form from that template, an empty id opens a blank form
func (d *Dashboard) SelectTemplate(templateID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode != ModeTemplatePicker {
		return utils.NewConflictError("no template picker is open")
	}

	if templateID == "" {
		d.form = form.New(d.strict)
	} else {
		t, ok := d.templates.Get(templateID)
		if !ok {
			return utils.NewNotFoundError("template " + templateID)
		}
		d.form = form.FromTemplate(t, d.strict)
	}
	d.mode = ModeForm
	return nil
}

// CancelTemplatePicker abandons the creation flow
func (d *Dashboard) CancelTemplatePicker() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode != ModeTemplatePicker {
		return utils.NewConflictError("no template picker is open")
	}
	d.mode = ModeIdle
	return nil
}

// OpenEditJobForm opens the form over an existing posting
func (d *Dashboard) OpenEditJobForm(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode != ModeIdle {
		return utils.NewConflictError("cannot open the edit form while " + d.mode.String() + " is active")
	}

	idx := d.indexOf(id)
	if idx < 0 {
		return utils.NewNotFoundError("job posting " + id)
	}

	d.form = form.ForEditing(d.postings[idx], d.strict)
	d.mode = ModeForm
	return nil
}

// CloseForm discards the working copy without submitting
func (d *Dashboard) CloseForm() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return err
	}
	d.form = nil
	d.mode = ModeIdle
	return nil
}

// SubmitForm finalizes the form. A new form runs the Create operation, an
// edit form runs the Edit operation; both end in the confirmation state. On
// validation failure the form stays open with its working copy unchanged.
func (d *Dashboard) SubmitForm(ctx context.Context, isDraft bool) (models.SubmitResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return models.SubmitResponse{}, err
	}

	finished, err := d.form.Submit()
	if err != nil {
		return models.SubmitResponse{}, err
	}

	created := !d.form.Editing()
	var posting models.JobPosting
	if created {
		posting = d.create(ctx, finished, isDraft)
	} else {
		finished.ID = d.form.EditingID()
		posting, err = d.edit(ctx, finished, isDraft)
		if err != nil {
			return models.SubmitResponse{}, err
		}
	}

	d.form = nil
	d.mode = ModeConfirmation

	return models.SubmitResponse{Posting: posting, IsDraft: isDraft, Created: created}, nil
}

// CreateAnother re-enters the creation flow from the confirmation state
func (d *Dashboard) CreateAnother() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode != ModeConfirmation {
		return utils.NewConflictError("no confirmation is showing")
	}

	if d.templates.Len() == 0 {
		d.mode = ModeForm
		d.form = form.New(d.strict)
	} else {
		d.mode = ModeTemplatePicker
	}
	return nil
}

// CloseConfirmation dismisses the confirmation message
func (d *Dashboard) CloseConfirmation() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode != ModeConfirmation {
		return utils.NewConflictError("no confirmation is showing")
	}
	d.mode = ModeIdle
	return nil
}

// FormView returns the active form's working copy
func (d *Dashboard) FormView() (models.FormView, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.form == nil || d.mode != ModeForm {
		return models.FormView{}, utils.NewConflictError("no form is open")
	}
	return d.form.View(), nil
}

// UpdateFormField forwards a field merge to the active form
func (d *Dashboard) UpdateFormField(name string, value json.RawMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return err
	}
	return d.form.UpdateField(name, value)
}

// UpdateFormSalary forwards a salary-part update to the active form
func (d *Dashboard) UpdateFormSalary(part string, value json.RawMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return err
	}
	return d.form.UpdateSalary(part, value)
}

// AddFormCustomField appends an empty custom-field pair to the active form
func (d *Dashboard) AddFormCustomField() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return err
	}
	d.form.AddCustomField()
	return nil
}

// UpdateFormCustomField rewrites one custom-field pair on the active form
func (d *Dashboard) UpdateFormCustomField(index int, field, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return err
	}
	d.form.UpdateCustomField(index, field, text)
	return nil
}

// RemoveFormCustomField removes one custom-field pair from the active form
func (d *Dashboard) RemoveFormCustomField(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return err
	}
	d.form.RemoveCustomField(index)
	return nil
}

// PreviewForm validates the working copy and opens the preview overlay over
// its projection. The form stays open.
func (d *Dashboard) PreviewForm() (models.PostingPreview, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return models.PostingPreview{}, err
	}

	preview, err := d.form.Preview()
	if err != nil {
		return models.PostingPreview{}, err
	}
	d.preview = &preview
	return preview, nil
}

// SaveFormAsTemplate snapshots the working copy as a reusable template, then
// closes the form and shows the confirmation
func (d *Dashboard) SaveFormAsTemplate() (models.Template, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireForm(); err != nil {
		return models.Template{}, err
	}

	t, err := d.form.SaveAsTemplate()
	if err != nil {
		return models.Template{}, err
	}

	d.templates.Add(t)
	d.form = nil
	d.mode = ModeConfirmation
	return t, nil
}

// OpenPreview opens the preview overlay over a posting from the table
func (d *Dashboard) OpenPreview(id string) (models.PostingPreview, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(id)
	if idx < 0 {
		return models.PostingPreview{}, utils.NewNotFoundError("job posting " + id)
	}

	preview := models.NewPreview(d.postings[idx])
	d.preview = &preview
	return preview, nil
}

// ClosePreview dismisses the preview overlay
func (d *Dashboard) ClosePreview() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preview = nil
}

// Delete removes the posting with the given id. Deleting an unknown id is an
// error and records nothing. If the preview is showing the deleted posting it
// is closed as well.
func (d *Dashboard) Delete(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(id)
	if idx < 0 {
		return utils.NewNotFoundError("job posting " + id)
	}

	d.postings = append(d.postings[:idx], d.postings[idx+1:]...)
	if d.preview != nil && d.preview.ID == id {
		d.preview = nil
	}

	d.trail.Record(id, models.ActionDeletion, "Job posting deleted", d.recruiter)
	d.persist(ctx)
	return nil
}

// Duplicate clones a posting under a fresh identifier and appends it to the
// end of the collection (unlike Create, which prepends)
func (d *Dashboard) Duplicate(ctx context.Context, id string) (models.JobPosting, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(id)
	if idx < 0 {
		return models.JobPosting{}, utils.NewNotFoundError("job posting " + id)
	}

	duplicate := d.postings[idx].Clone()
	duplicate.ID = utils.GenerateID()
	d.postings = append(d.postings, duplicate)

	d.trail.Record(duplicate.ID, models.ActionDuplication, "Duplicated from job posting "+id, d.recruiter)
	d.persist(ctx)
	return duplicate.Clone(), nil
}

// ChangeStatus updates only the status of the matching posting
func (d *Dashboard) ChangeStatus(ctx context.Context, id string, status models.PostingStatus) error {
	if !status.Valid() {
		return utils.NewBadRequestError("unknown posting status: " + string(status))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	idx := d.indexOf(id)
	if idx < 0 {
		return utils.NewNotFoundError("job posting " + id)
	}

	d.postings[idx].Status = status

	d.trail.Record(id, models.ActionStatusChange, "Status changed to "+string(status), d.recruiter)
	d.persist(ctx)
	return nil
}

// create mints an identifier, derives the status from the draft flag and
// prepends the posting so the newest listing is first. Caller holds the lock.
func (d *Dashboard) create(ctx context.Context, posting models.JobPosting, isDraft bool) models.JobPosting {
	posting.ID = utils.GenerateID()
	if isDraft {
		posting.Status = models.StatusDraft
	} else {
		posting.Status = models.StatusActive
	}
	if posting.CustomFields == nil {
		posting.CustomFields = models.CustomFieldMap{}
	}
	posting.SalaryRange.Formatted = posting.SalaryRange.Format()

	d.postings = append([]models.JobPosting{posting}, d.postings...)

	desc := "New job posting published"
	if isDraft {
		desc = "New job posting saved as draft"
	}
	d.trail.Record(posting.ID, models.ActionCreation, desc, d.recruiter)
	d.persist(ctx)
	return posting.Clone()
}

// edit replaces the matching posting in place, preserving collection order.
// The submitted status is kept unless the user saved the edit as a draft.
// The posting may have been deleted while the form was open; that edit is
// rejected without recording or persisting anything. Caller holds the lock.
func (d *Dashboard) edit(ctx context.Context, posting models.JobPosting, isDraft bool) (models.JobPosting, error) {
	idx := d.indexOf(posting.ID)
	if idx < 0 {
		return models.JobPosting{}, utils.NewNotFoundError("job posting " + posting.ID)
	}

	if isDraft {
		posting.Status = models.StatusDraft
	}
	posting.SalaryRange.Formatted = posting.SalaryRange.Format()
	d.postings[idx] = posting

	desc := "Job posting updated"
	if isDraft {
		desc = "Job posting saved as draft"
	}
	d.trail.Record(posting.ID, models.ActionEdit, desc, d.recruiter)
	d.persist(ctx)
	return posting.Clone(), nil
}

// persist writes the whole collection through to the store. A failed write is
// logged but does not fail the mutation; the in-memory collection stays
// authoritative for the session.
func (d *Dashboard) persist(ctx context.Context) {
	if err := d.store.Save(ctx, d.postings); err != nil {
		d.logger.Error("Failed to persist posting collection", map[string]interface{}{
			"postings": len(d.postings),
			"error":    err.Error(),
		})
	}
}

// filtered applies the status filter AND the case-insensitive title search.
// Caller holds at least the read lock.
func (d *Dashboard) filtered() []models.JobPosting {
	needle := strings.ToLower(d.searchTerm)

	filtered := make([]models.JobPosting, 0, len(d.postings))
	for _, p := range d.postings {
		if d.filterStatus != FilterAll && string(p.Status) != d.filterStatus {
			continue
		}
		if !strings.Contains(strings.ToLower(p.TitleLabel()), needle) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (d *Dashboard) totalPages(filteredCount int) int {
	return (filteredCount + d.pageSize - 1) / d.pageSize
}

func (d *Dashboard) indexOf(id string) int {
	for i := range d.postings {
		if d.postings[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Dashboard) requireForm() error {
	if d.mode != ModeForm || d.form == nil {
		return utils.NewConflictError("no form is open")
	}
	return nil
}
