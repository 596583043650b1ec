package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suresphere/atlas/store"
)

func TestListClientsCommand(t *testing.T) {
	s := store.NewSeeded()

	err := ListClientsCommand(s, []string{})
	if err != nil {
		t.Errorf("ListClientsCommand failed: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	seeded := store.NewSeeded()
	csvPath := filepath.Join(t.TempDir(), "clients.csv")

	if err := ExportClientsCommand(seeded, []string{"--output", csvPath}); err != nil {
		t.Fatalf("ExportClientsCommand failed: %v", err)
	}
	if _, err := os.Stat(csvPath); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	empty := store.New()
	if err := ImportClientsCommand(empty, []string{csvPath}); err != nil {
		t.Fatalf("ImportClientsCommand failed: %v", err)
	}
	if got, want := len(empty.Clients()), len(seeded.Clients()); got != want {
		t.Errorf("imported %d clients, want %d", got, want)
	}

	// A second import hits the dedupe path for every row.
	if err := ImportClientsCommand(empty, []string{csvPath}); err != nil {
		t.Fatalf("second import failed: %v", err)
	}
	if got, want := len(empty.Clients()), len(seeded.Clients()); got != want {
		t.Errorf("after re-import have %d clients, want %d", got, want)
	}
}

func TestImportClientsMissingFile(t *testing.T) {
	s := store.New()

	if err := ImportClientsCommand(s, []string{}); err == nil {
		t.Error("expected error when input file is omitted")
	}
	if err := ImportClientsCommand(s, []string{"/nonexistent/clients.csv"}); err == nil {
		t.Error("expected error for missing input file")
	}
}
