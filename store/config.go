// ABOUTME: Platform configuration and module catalog
// ABOUTME: Handles branding updates, feature toggles, and module reordering
package store

import (
	"fmt"

	"github.com/suresphere/atlas/models"
)

// Module identifiers. ModuleOrder is always a permutation of this set.
const (
	ModuleControlStudio      = "controlStudio"
	ModuleClient360          = "client360"
	ModulePolicyMatrix       = "policyMatrix"
	ModuleClaimsCommand      = "claimsCommand"
	ModuleQuoteForge         = "quoteForge"
	ModuleRevenuePulse       = "revenuePulse"
	ModuleComplianceSentinel = "complianceSentinel"
	ModuleDocuVault          = "docuVault"
	ModuleRiskInsights       = "riskInsights"
	ModuleEngageHub          = "engageHub"
	ModuleFlowAutomator      = "flowAutomator"
)

var moduleCatalog = []models.ModuleConfig{
	{ID: ModuleControlStudio, Name: "Control Studio", Description: "Module ordering and branding personalization.", Icon: "🧭"},
	{ID: ModuleClient360, Name: "Client 360", Description: "Unified client view with dedupe intelligence.", Icon: "👥"},
	{ID: ModulePolicyMatrix, Name: "Policy Matrix", Description: "Central policy inventory with document attachments.", Icon: "📄"},
	{ID: ModuleClaimsCommand, Name: "Claims Command", Description: "Claims tracking and prioritization.", Icon: "⚖️"},
	{ID: ModuleQuoteForge, Name: "Quote Forge", Description: "Guided quoting with premium suggestions.", Icon: "🧠"},
	{ID: ModuleRevenuePulse, Name: "Revenue Pulse", Description: "Commission forecasting and reconciliation.", Icon: "💹"},
	{ID: ModuleComplianceSentinel, Name: "Compliance Sentinel", Description: "Audit-ready compliance controls.", Icon: "🛡️"},
	{ID: ModuleDocuVault, Name: "DocuVault", Description: "Document vault with instant text previews.", Icon: "🗂️"},
	{ID: ModuleRiskInsights, Name: "Risk Insights", Description: "Portfolio analytics and loss ratios.", Icon: "📊"},
	{ID: ModuleEngageHub, Name: "Engage Hub", Description: "Multichannel messaging and sentiment.", Icon: "💬"},
	{ID: ModuleFlowAutomator, Name: "Flow Automator", Description: "Workflow builder and SLA orchestration.", Icon: "🚀"},
}

func defaultConfig() models.PlatformConfig {
	order := make([]string, len(moduleCatalog))
	for i, mod := range moduleCatalog {
		order[i] = mod.ID
	}
	return models.PlatformConfig{
		BrandName:   "SureSphere Atlas",
		Theme:       "Aurora",
		AccentMode:  "Teal",
		ModuleOrder: order,
		Toggles: map[string]bool{
			"aiCopilot":        true,
			"ocrExtraction":    true,
			"predictiveAlerts": true,
			"sandboxMode":      false,
		},
	}
}

// Config returns a copy of the current platform configuration.
func (s *Store) Config() models.PlatformConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyConfig(s.config)
}

// Modules returns the module catalog entries in the configured order.
func (s *Store) Modules() []models.ModuleConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[string]models.ModuleConfig, len(moduleCatalog))
	for _, mod := range moduleCatalog {
		byID[mod.ID] = mod
	}

	out := make([]models.ModuleConfig, 0, len(s.config.ModuleOrder))
	for _, id := range s.config.ModuleOrder {
		if mod, ok := byID[id]; ok {
			out = append(out, mod)
		}
	}
	return out
}

// ConfigPatch is a partial platform configuration update. Zero-valued fields
// are left unchanged; toggles merge key-wise.
type ConfigPatch struct {
	BrandName   string
	Theme       string
	AccentMode  string
	ModuleOrder []string
	Toggles     map[string]bool
}

// UpdateConfig merges the patch into the current configuration and returns
// the result.
func (s *Store) UpdateConfig(patch ConfigPatch) models.PlatformConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.BrandName != "" {
		s.config.BrandName = patch.BrandName
	}
	if patch.Theme != "" {
		s.config.Theme = patch.Theme
	}
	if patch.AccentMode != "" {
		s.config.AccentMode = patch.AccentMode
	}
	if patch.ModuleOrder != nil {
		s.config.ModuleOrder = append([]string(nil), patch.ModuleOrder...)
	}
	for name, on := range patch.Toggles {
		s.config.Toggles[name] = on
	}
	return copyConfig(s.config)
}

// ReorderModules moves the module at position from to position to. The
// identifier set is preserved; only positions change.
func (s *Store) ReorderModules(from, to int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.config.ModuleOrder
	if from < 0 || from >= len(order) || to < 0 || to >= len(order) {
		return nil, fmt.Errorf("reorder out of range: from=%d to=%d len=%d", from, to, len(order))
	}

	updated := make([]string, 0, len(order))
	updated = append(updated, order[:from]...)
	updated = append(updated, order[from+1:]...)
	moved := order[from]

	updated = append(updated[:to], append([]string{moved}, updated[to:]...)...)
	s.config.ModuleOrder = updated
	return append([]string(nil), updated...), nil
}

func copyConfig(cfg models.PlatformConfig) models.PlatformConfig {
	out := cfg
	out.ModuleOrder = append([]string(nil), cfg.ModuleOrder...)
	out.Toggles = make(map[string]bool, len(cfg.Toggles))
	for name, on := range cfg.Toggles {
		out.Toggles[name] = on
	}
	return out
}
