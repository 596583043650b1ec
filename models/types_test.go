// ABOUTME: Tests for model-level derived values
// ABOUTME: Covers quote weighting and compliance due windows
package models

import (
	"testing"
	"time"
)

func TestWeightedPremium(t *testing.T) {
	q := Quote{PremiumEstimate: 91000, Probability: 0.7}

	got := q.WeightedPremium()
	want := 63700.0
	if got < want-0.001 || got > want+0.001 {
		t.Errorf("WeightedPremium() = %f, want %f", got, want)
	}
}

func TestWeightedPremiumZeroProbability(t *testing.T) {
	q := Quote{PremiumEstimate: 91000, Probability: 0}

	if got := q.WeightedPremium(); got != 0 {
		t.Errorf("WeightedPremium() = %f, want 0", got)
	}
}

func TestComplianceDueWithin(t *testing.T) {
	now := time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate string
		days    int
		want    bool
	}{
		{"inside window", "2024-05-01", 30, true},
		{"outside window", "2024-06-10", 30, false},
		{"already past", "2024-03-01", 30, false},
		{"empty date", "", 30, false},
		{"garbage date", "soon", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := ComplianceTask{Title: "audit", DueDate: tt.dueDate}
			if got := task.DueWithin(now, tt.days); got != tt.want {
				t.Errorf("DueWithin(%q, %d) = %v, want %v", tt.dueDate, tt.days, got, tt.want)
			}
		})
	}
}
