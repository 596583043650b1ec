// ABOUTME: Tests for client MCP tool handlers
// ABOUTME: Validates tool input validation, dedupe status, and merge composition
package handlers

import (
	"context"
	"testing"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

func TestUpsertClientHandler(t *testing.T) {
	s := store.New()
	handler := NewClientHandlers(s)

	_, out, err := handler.UpsertClient(context.Background(), nil, UpsertClientInput{
		Name:  "Acme Risk Ltd.",
		Email: "ops@acmerisk.example",
	})
	if err != nil {
		t.Fatalf("UpsertClient failed: %v", err)
	}
	if out.Status != models.UpsertCreated {
		t.Errorf("Expected status %q, got %q", models.UpsertCreated, out.Status)
	}
	if out.Record.ID == "" {
		t.Error("ID was not set")
	}
	if out.Record.Status != models.ClientProspect {
		t.Errorf("Expected default status Prospect, got %q", out.Record.Status)
	}
}

func TestUpsertClientRequiresNameAndEmail(t *testing.T) {
	s := store.New()
	handler := NewClientHandlers(s)

	_, _, err := handler.UpsertClient(context.Background(), nil, UpsertClientInput{Name: "No Email"})
	if err == nil {
		t.Error("Expected error for missing email")
	}

	_, _, err = handler.UpsertClient(context.Background(), nil, UpsertClientInput{Email: "no-name@example.com"})
	if err == nil {
		t.Error("Expected error for missing name")
	}
}

func TestUpsertClientReportsDuplicate(t *testing.T) {
	s := store.New()
	handler := NewClientHandlers(s)

	_, first, err := handler.UpsertClient(context.Background(), nil, UpsertClientInput{
		Name:  "Harbor Logistics",
		Email: "risk@harborlog.example",
	})
	if err != nil {
		t.Fatalf("UpsertClient failed: %v", err)
	}

	_, second, err := handler.UpsertClient(context.Background(), nil, UpsertClientInput{
		Name:  "Different Name",
		Email: "RISK@HARBORLOG.EXAMPLE",
	})
	if err != nil {
		t.Fatalf("UpsertClient failed: %v", err)
	}
	if second.Status != models.UpsertDuplicate {
		t.Errorf("Expected status %q, got %q", models.UpsertDuplicate, second.Status)
	}
	if second.DuplicateOf == nil {
		t.Fatal("DuplicateOf was not set")
	}
	if second.DuplicateOf.ID != first.Record.ID {
		t.Errorf("Expected duplicate of %s, got %s", first.Record.ID, second.DuplicateOf.ID)
	}
}

func TestMergeClientsUnionsTags(t *testing.T) {
	s := store.New()
	handler := NewClientHandlers(s)

	_, created, err := handler.UpsertClient(context.Background(), nil, UpsertClientInput{
		Name:  "Northwind Freight",
		Email: "cover@northwind.example",
		Tags:  []string{"marine", "fleet"},
	})
	if err != nil {
		t.Fatalf("UpsertClient failed: %v", err)
	}

	_, merged, err := handler.MergeClients(context.Background(), nil, MergeClientsInput{
		IntoID: created.Record.ID,
		Email:  "claims@northwind.example",
		Tags:   []string{"fleet", "cargo"},
	})
	if err != nil {
		t.Fatalf("MergeClients failed: %v", err)
	}
	if merged.Status != models.UpsertUpdated {
		t.Errorf("Expected status %q, got %q", models.UpsertUpdated, merged.Status)
	}
	if merged.Record.Email != "claims@northwind.example" {
		t.Errorf("Expected merged email, got %q", merged.Record.Email)
	}

	want := []string{"marine", "fleet", "cargo"}
	if len(merged.Record.Tags) != len(want) {
		t.Fatalf("Expected %d tags, got %v", len(want), merged.Record.Tags)
	}
	for i, tag := range want {
		if merged.Record.Tags[i] != tag {
			t.Errorf("Tag %d: expected %q, got %q", i, tag, merged.Record.Tags[i])
		}
	}
}

func TestMergeClientsUnknownID(t *testing.T) {
	s := store.New()
	handler := NewClientHandlers(s)

	_, _, err := handler.MergeClients(context.Background(), nil, MergeClientsInput{IntoID: "cli-missing"})
	if err == nil {
		t.Error("Expected error for unknown client")
	}
}

func TestRemoveClientHandler(t *testing.T) {
	s := store.NewSeeded()
	handler := NewClientHandlers(s)

	_, out, err := handler.RemoveClient(context.Background(), nil, RemoveClientInput{ID: "cli-ins-001"})
	if err != nil {
		t.Fatalf("RemoveClient failed: %v", err)
	}
	if !out.Removed {
		t.Error("Expected client to be removed")
	}

	_, out, err = handler.RemoveClient(context.Background(), nil, RemoveClientInput{ID: "cli-ins-001"})
	if err != nil {
		t.Fatalf("RemoveClient failed: %v", err)
	}
	if out.Removed {
		t.Error("Expected second removal to report not found")
	}
}
