// ABOUTME: Tests for global keyword search
// ABOUTME: Covers empty queries, term scoring, stable ordering, and the result cap
package store

import (
	"fmt"
	"testing"

	"github.com/suresphere/atlas/models"
)

func TestGlobalSearchEmptyQuery(t *testing.T) {
	s := NewSeeded()

	if got := s.GlobalSearch(""); got == nil || len(got) != 0 {
		t.Errorf("Expected non-nil empty result for empty query, got %v", got)
	}
	if got := s.GlobalSearch("   "); got == nil || len(got) != 0 {
		t.Errorf("Expected non-nil empty result for whitespace query, got %v", got)
	}
	if got := s.GlobalSearch("zzzzz-no-match"); got == nil || len(got) != 0 {
		t.Errorf("Expected non-nil empty result for unmatched query, got %v", got)
	}
}

func TestGlobalSearchTermScoring(t *testing.T) {
	s := NewSeeded()

	// "willowbrook" matches the client label only; "quotes" matches nothing
	// ("quote" singular appears in quote labels, "quotes" does not).
	results := s.GlobalSearch("Willowbrook quotes")
	if len(results) != 1 {
		t.Fatalf("Expected exactly 1 result, got %d: %v", len(results), results)
	}
	if results[0].ID != "cli-ins-002" {
		t.Errorf("Expected cli-ins-002, got %s", results[0].ID)
	}
	if results[0].Label != "willowbrook medical group risk@willowbrook-med.com" {
		t.Errorf("Label not lower-cased concatenation: %q", results[0].Label)
	}
}

func TestGlobalSearchHigherScoreFirst(t *testing.T) {
	s := NewSeeded()

	// "medical malpractice" scores 2 on pol-002 ("sr-7789202 medical
	// malpractice") and 1 on the Willowbrook client and malpractice claim.
	results := s.GlobalSearch("medical malpractice")
	if len(results) < 2 {
		t.Fatalf("Expected multiple results, got %d", len(results))
	}
	if results[0].ID != "pol-002" {
		t.Errorf("Expected pol-002 first, got %s", results[0].ID)
	}
}

func TestGlobalSearchStableTieOrder(t *testing.T) {
	s := New()
	s.UpsertPartner(models.Partner{Name: "Harbor Mutual", Specialization: "Marine"})
	s.UpsertClient(models.Client{Name: "Harbor Freight", Email: "ops@harbor.example"})
	s.UpsertClient(models.Client{Name: "Harbor Logistics", Email: "cover@harborlog.example"})

	// All three score 1; corpus order is clients (most-recent-first), then
	// partners, and ties must keep that order.
	results := s.GlobalSearch("harbor")
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	wantOrder := []string{"harbor logistics", "harbor freight", "harbor mutual"}
	for i, want := range wantOrder {
		if len(results[i].Label) < len(want) || results[i].Label[:len(want)] != want {
			t.Errorf("Position %d: expected label starting %q, got %q", i, want, results[i].Label)
		}
	}
}

func TestGlobalSearchCapsAtSix(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		s.UpsertClient(models.Client{
			Name:  fmt.Sprintf("Meridian Subsidiary %d", i),
			Email: fmt.Sprintf("risk%d@meridian.example", i),
		})
	}

	results := s.GlobalSearch("meridian")
	if len(results) != 6 {
		t.Errorf("Expected 6 results, got %d", len(results))
	}
}

func TestGlobalSearchReflectsMutations(t *testing.T) {
	s := New()
	if got := s.GlobalSearch("zephyr"); len(got) != 0 {
		t.Fatalf("Unexpected hit before creation: %v", got)
	}

	s.UpsertClient(models.Client{Name: "Zephyr Aviation", Email: "fly@zephyr.example"})
	if got := s.GlobalSearch("zephyr"); len(got) != 1 {
		t.Errorf("Expected 1 hit after creation, got %d", len(got))
	}
}
