// ABOUTME: Tests for document upserts
// ABOUTME: Verifies upload date stamping with a fixed clock
package store

import (
	"testing"
	"time"

	"github.com/suresphere/atlas/models"
)

func TestUpsertDocumentStampsUploadDate(t *testing.T) {
	s := New()
	s.SetClock(func() time.Time {
		return time.Date(2024, 4, 20, 9, 30, 0, 0, time.UTC)
	})

	record := s.UpsertDocument(models.DocumentRecord{Name: "cert.pdf", Category: "Policy"})
	if record.UploadedAt != "2024-04-20" {
		t.Errorf("Expected stamped date 2024-04-20, got %q", record.UploadedAt)
	}
}

func TestUpsertDocumentKeepsSuppliedDate(t *testing.T) {
	s := New()

	record := s.UpsertDocument(models.DocumentRecord{Name: "cert.pdf", UploadedAt: "2023-12-31"})
	if record.UploadedAt != "2023-12-31" {
		t.Errorf("Supplied date overwritten: %q", record.UploadedAt)
	}
}

func TestUpsertDocumentUpdate(t *testing.T) {
	s := New()
	doc := s.UpsertDocument(models.DocumentRecord{Name: "cert.pdf", Category: "Policy"})

	updated := s.UpsertDocument(models.DocumentRecord{ID: doc.ID, OcrExtract: "Insured: Acme."})
	if updated.OcrExtract != "Insured: Acme." {
		t.Errorf("Extract not applied: %q", updated.OcrExtract)
	}
	if updated.Name != "cert.pdf" {
		t.Errorf("Omitted name not retained: %q", updated.Name)
	}
	if len(s.Documents()) != 1 {
		t.Errorf("Update added a record: %d documents", len(s.Documents()))
	}
}
