package audit

import (
	"testing"

	"hireboard/pkg/models"
)

func TestRecordPrependsNewestFirst(t *testing.T) {
	log := NewLog()

	log.Record("job-1", models.ActionCreation, "New job posting published", "Current User")
	log.Record("job-1", models.ActionEdit, "Job posting updated", "Current User")
	log.Record("job-1", models.ActionDeletion, "Job posting deleted", "Current User")

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	wantOrder := []models.AuditAction{models.ActionDeletion, models.ActionEdit, models.ActionCreation}
	for i, want := range wantOrder {
		if entries[i].Action != want {
			t.Errorf("entries[%d].Action = %q, want %q", i, entries[i].Action, want)
		}
	}
}

func TestRecordFillsEntry(t *testing.T) {
	log := NewLog()
	entry := log.Record("job-1", models.ActionCreation, "New job posting published", "Current User")

	if entry.ID == "" {
		t.Error("entry must get an id")
	}
	if entry.Timestamp.IsZero() {
		t.Error("entry must be timestamped")
	}
	if entry.Recruiter != "Current User" {
		t.Errorf("recruiter = %q, want Current User", entry.Recruiter)
	}
	if log.Len() != 1 {
		t.Errorf("len = %d, want 1", log.Len())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Record("job-1", models.ActionCreation, "New job posting published", "Current User")

	entries := log.Entries()
	entries[0].Description = "tampered"

	if log.Entries()[0].Description != "New job posting published" {
		t.Error("mutating the returned slice must not affect the log")
	}
}
