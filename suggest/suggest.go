// ABOUTME: Canned field suggestions for guided forms
// ABOUTME: Fixed lists keyed by field name plus premium estimate arithmetic
package suggest

import (
	"math"
	"strconv"
)

// Premium estimate rate bands applied to a coverage amount.
var premiumRates = []float64{0.028, 0.032, 0.036}

var fieldSuggestions = map[string][]string{
	"industry": {
		"Healthcare & Life Sciences",
		"Fintech & Digital Assets",
		"Global Logistics",
		"Retail & Omnichannel",
		"Energy & Renewables",
	},
	"coverage": {
		"Cyber Liability - Business Interruption",
		"Directors & Officers Side A/B/C",
		"Enterprise Risk Umbrella",
		"Trade Credit with Political Risk",
	},
	"carrier": {
		"Guardian Mutual",
		"Apex Underwriters",
		"Veritas Assurance",
		"Nova Sheild",
		"Atlas Syndicate 514",
	},
	"handler": {
		"Aria Patel",
		"Marcus Lee",
		"Jordan Miller",
		"Priya Desai",
	},
}

// Suggest returns the fixed suggestion list for a field. The special field
// "premiumEstimate" computes three banded estimates from context["coverage"]
// when it parses as a number; unknown fields return an empty list.
func Suggest(field string, context map[string]string) []string {
	if field == "premiumEstimate" {
		if raw, ok := context["coverage"]; ok {
			if coverage, err := strconv.ParseFloat(raw, 64); err == nil {
				return premiumEstimates(coverage)
			}
		}
	}

	if list, ok := fieldSuggestions[field]; ok {
		out := make([]string, len(list))
		copy(out, list)
		return out
	}
	return []string{}
}

func premiumEstimates(coverage float64) []string {
	out := make([]string, len(premiumRates))
	for i, rate := range premiumRates {
		out[i] = strconv.FormatInt(int64(math.Round(coverage*rate)), 10)
	}
	return out
}
