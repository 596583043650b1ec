// ABOUTME: Tests for the universal query and global search tools
// ABOUTME: Validates entity-type routing, filters, and result caps
package handlers

import (
	"context"
	"testing"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

func TestQueryRecordsByEntityType(t *testing.T) {
	s := store.NewSeeded()
	handler := NewQueryHandlers(s)

	_, out, err := handler.QueryRecords(context.Background(), nil, QueryRecordsInput{EntityType: "client"})
	if err != nil {
		t.Fatalf("QueryRecords failed: %v", err)
	}
	if out.EntityType != "client" {
		t.Errorf("Expected entity_type client, got %q", out.EntityType)
	}
	if out.Count != len(s.Clients()) {
		t.Errorf("Expected %d clients, got %d", len(s.Clients()), out.Count)
	}
}

func TestQueryRecordsStatusFilter(t *testing.T) {
	s := store.NewSeeded()
	handler := NewQueryHandlers(s)

	_, out, err := handler.QueryRecords(context.Background(), nil, QueryRecordsInput{
		EntityType: "claim",
		Status:     "filed",
	})
	if err != nil {
		t.Fatalf("QueryRecords failed: %v", err)
	}
	for _, r := range out.Results {
		claim, ok := r.(models.Claim)
		if !ok {
			t.Fatalf("Result is not a claim: %T", r)
		}
		if claim.Stage != models.ClaimFiled {
			t.Errorf("Expected stage Filed, got %q", claim.Stage)
		}
	}
}

func TestQueryRecordsClientFilter(t *testing.T) {
	s := store.NewSeeded()
	handler := NewQueryHandlers(s)

	_, out, err := handler.QueryRecords(context.Background(), nil, QueryRecordsInput{
		EntityType: "policy",
		ClientID:   "cli-ins-001",
	})
	if err != nil {
		t.Fatalf("QueryRecords failed: %v", err)
	}
	if out.Count == 0 {
		t.Fatal("Expected policies for cli-ins-001")
	}
	for _, r := range out.Results {
		policy := r.(models.Policy)
		if policy.ClientID != "cli-ins-001" {
			t.Errorf("Expected client cli-ins-001, got %q", policy.ClientID)
		}
	}
}

func TestQueryRecordsLimit(t *testing.T) {
	s := store.NewSeeded()
	handler := NewQueryHandlers(s)

	_, out, err := handler.QueryRecords(context.Background(), nil, QueryRecordsInput{
		EntityType: "policy",
		Limit:      1,
	})
	if err != nil {
		t.Fatalf("QueryRecords failed: %v", err)
	}
	if out.Count != 1 {
		t.Errorf("Expected 1 result, got %d", out.Count)
	}
}

func TestQueryRecordsInvalidEntityType(t *testing.T) {
	s := store.New()
	handler := NewQueryHandlers(s)

	_, _, err := handler.QueryRecords(context.Background(), nil, QueryRecordsInput{EntityType: "ledger"})
	if err == nil {
		t.Error("Expected error for invalid entity_type")
	}
}

func TestGlobalSearchTool(t *testing.T) {
	s := store.NewSeeded()
	handler := NewQueryHandlers(s)

	_, out, err := handler.GlobalSearch(context.Background(), nil, GlobalSearchInput{Query: "willowbrook"})
	if err != nil {
		t.Fatalf("GlobalSearch failed: %v", err)
	}
	if out.Count == 0 {
		t.Fatal("Expected search hits")
	}
	if out.Results[0].ID != "cli-ins-002" {
		t.Errorf("Expected cli-ins-002 first, got %s", out.Results[0].ID)
	}
}
