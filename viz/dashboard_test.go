// ABOUTME: Tests for dashboard statistics generation
// ABOUTME: Validates counts, financial rollups, and attention items
package viz

import (
	"strings"
	"testing"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

func TestGenerateDashboardStats(t *testing.T) {
	s := store.NewSeeded()
	stats := GenerateDashboardStats(s)

	if stats.TotalClients != len(s.Clients()) {
		t.Errorf("Expected %d clients, got %d", len(s.Clients()), stats.TotalClients)
	}
	if stats.TotalPolicies != len(s.Policies()) {
		t.Errorf("Expected %d policies, got %d", len(s.Policies()), stats.TotalPolicies)
	}

	var premium int64
	for _, p := range s.Policies() {
		premium += p.Premium
	}
	if stats.TotalPremium != premium {
		t.Errorf("Expected premium %d, got %d", premium, stats.TotalPremium)
	}

	stageTotal := 0
	for _, count := range stats.ClaimsByStage {
		stageTotal += count
	}
	if stageTotal != stats.TotalClaims {
		t.Errorf("Stage counts %d do not sum to total claims %d", stageTotal, stats.TotalClaims)
	}
}

func TestLossRatioEmptyBook(t *testing.T) {
	s := store.New()
	stats := GenerateDashboardStats(s)

	if stats.LossRatio != 0 {
		t.Errorf("Expected zero loss ratio for empty book, got %f", stats.LossRatio)
	}
}

func TestRenderDashboard(t *testing.T) {
	s := store.NewSeeded()
	out := RenderDashboard(GenerateDashboardStats(s))

	if !strings.Contains(out, "ATLAS OPERATIONS DASHBOARD") {
		t.Error("Missing header")
	}
	if !strings.Contains(out, "POLICY BOOK") {
		t.Error("Missing policy book section")
	}
	if !strings.Contains(out, models.PolicyActive) {
		t.Error("Missing active status row")
	}
}
