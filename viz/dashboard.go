// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides ASCII dashboard for the broking operations overview
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type DashboardStats struct {
	// Book overview
	BookByStatus map[string]BookStatusStats

	// Overall stats
	TotalClients  int
	TotalPolicies int
	TotalClaims   int

	// Claims workload
	ClaimsByStage map[string]int

	// Financials
	TotalPremium       int64
	TotalExposure      int64
	CommissionByStatus map[string]int64
	LossRatio          float64

	// Needs attention
	ComplianceDueSoon []models.ComplianceTask
}

type BookStatusStats struct {
	Status  string
	Count   int
	Premium int64
}

func GenerateDashboardStats(s *store.Store) *DashboardStats {
	stats := &DashboardStats{
		BookByStatus:       make(map[string]BookStatusStats),
		ClaimsByStage:      make(map[string]int),
		CommissionByStatus: make(map[string]int64),
	}

	policies := s.Policies()
	for _, policy := range policies {
		status := policy.Status
		if status == "" {
			status = "unknown"
		}
		bstats := stats.BookByStatus[status]
		bstats.Status = status
		bstats.Count++
		bstats.Premium += policy.Premium
		stats.BookByStatus[status] = bstats
		stats.TotalPremium += policy.Premium
	}
	stats.TotalPolicies = len(policies)
	stats.TotalClients = len(s.Clients())

	claims := s.Claims()
	for _, claim := range claims {
		stats.ClaimsByStage[claim.Stage]++
		stats.TotalExposure += claim.Amount
	}
	stats.TotalClaims = len(claims)

	denom := stats.TotalPolicies
	if denom < 1 {
		denom = 1
	}
	stats.LossRatio = float64(stats.TotalClaims) / float64(denom) * 42

	for _, rec := range s.Commissions() {
		stats.CommissionByStatus[rec.Status] += rec.Amount
	}

	now := time.Now()
	for _, task := range s.ComplianceTasks() {
		if task.Status == models.ComplianceClosed {
			continue
		}
		if task.DueWithin(now, 30) {
			stats.ComplianceDueSoon = append(stats.ComplianceDueSoon, task)
		}
	}

	return stats
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  ATLAS OPERATIONS DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	// Policy book overview
	out.WriteString("POLICY BOOK\n")
	renderBook(&out, stats.BookByStatus)
	out.WriteString("\n")

	// Stats
	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  👥 %d clients  📄 %d policies  ⚖️ %d claims\n",
		stats.TotalClients, stats.TotalPolicies, stats.TotalClaims))
	out.WriteString(fmt.Sprintf("  💰 premium %d  exposure %d  loss ratio %.1f%%\n\n",
		stats.TotalPremium, stats.TotalExposure, stats.LossRatio))

	// Claims workload
	if len(stats.ClaimsByStage) > 0 {
		out.WriteString("CLAIMS BY STAGE\n")
		stages := []string{
			models.ClaimFiled,
			models.ClaimInvestigating,
			models.ClaimApproved,
			models.ClaimSettled,
			models.ClaimDenied,
		}
		for _, stage := range stages {
			count, ok := stats.ClaimsByStage[stage]
			if !ok {
				continue
			}
			out.WriteString(fmt.Sprintf("  %-14s %d\n", stage, count))
		}
		out.WriteString("\n")
	}

	// Commissions
	if len(stats.CommissionByStatus) > 0 {
		out.WriteString("COMMISSIONS\n")
		for _, status := range []string{models.CommissionProjected, models.CommissionInvoiced, models.CommissionReceived} {
			amount, ok := stats.CommissionByStatus[status]
			if !ok {
				continue
			}
			out.WriteString(fmt.Sprintf("  %-10s %d\n", status, amount))
		}
		out.WriteString("\n")
	}

	// Needs attention
	if len(stats.ComplianceDueSoon) > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		out.WriteString(fmt.Sprintf("  ⚠️  %d compliance task(s) due within 30 days\n", len(stats.ComplianceDueSoon)))
		for _, task := range stats.ComplianceDueSoon {
			out.WriteString(fmt.Sprintf("      %s (due %s, %s risk)\n", task.Title, task.DueDate, task.RiskLevel))
		}
	}

	return out.String()
}

func renderBook(out *strings.Builder, book map[string]BookStatusStats) {
	statuses := []string{
		models.PolicyActive,
		models.PolicyPending,
		models.PolicyLapsed,
	}

	maxCount := 0
	for _, bstats := range book {
		if bstats.Count > maxCount {
			maxCount = bstats.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, status := range statuses {
		bstats, exists := book[status]
		if !exists {
			continue
		}

		// 0-10 block bar scaled against the largest bucket
		barLength := (bstats.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		premiumK := bstats.Premium / 1000
		out.WriteString(fmt.Sprintf("  %-9s %s  %2d (%dK premium)\n",
			status, bar, bstats.Count, premiumK))
	}
}
