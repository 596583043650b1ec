// ABOUTME: Tests for field suggestions and premium estimates
package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPremiumEstimate(t *testing.T) {
	got := Suggest("premiumEstimate", map[string]string{"coverage": "1000000"})
	assert.Equal(t, []string{"28000", "32000", "36000"}, got)
}

func TestPremiumEstimateRounding(t *testing.T) {
	// 12345 * 0.028 = 345.66 -> 346
	got := Suggest("premiumEstimate", map[string]string{"coverage": "12345"})
	assert.Equal(t, []string{"346", "395", "444"}, got)
}

func TestPremiumEstimateNonNumericCoverage(t *testing.T) {
	got := Suggest("premiumEstimate", map[string]string{"coverage": "a lot"})
	assert.Empty(t, got)
}

func TestKnownFieldOrderPreserved(t *testing.T) {
	got := Suggest("carrier", nil)
	assert.Equal(t, "Guardian Mutual", got[0])
	assert.Len(t, got, 5)
}

func TestUnknownFieldReturnsEmpty(t *testing.T) {
	got := Suggest("favouriteColour", nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
