// ABOUTME: Platform configuration MCP tool handlers
// ABOUTME: Implements get_config, update_config, reorder_modules, and list_modules tools
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type ConfigHandlers struct {
	store *store.Store
}

func NewConfigHandlers(s *store.Store) *ConfigHandlers {
	return &ConfigHandlers{store: s}
}

type GetConfigInput struct{}

func (h *ConfigHandlers) GetConfig(_ context.Context, request *mcp.CallToolRequest, input GetConfigInput) (*mcp.CallToolResult, models.PlatformConfig, error) {
	return nil, h.store.Config(), nil
}

type UpdateConfigInput struct {
	BrandName  string          `json:"brand_name,omitempty" jsonschema:"New brand name"`
	Theme      string          `json:"theme,omitempty" jsonschema:"New theme name"`
	AccentMode string          `json:"accent_mode,omitempty" jsonschema:"New accent mode"`
	Toggles    map[string]bool `json:"toggles,omitempty" jsonschema:"Feature toggles to merge in"`
}

func (h *ConfigHandlers) UpdateConfig(_ context.Context, request *mcp.CallToolRequest, input UpdateConfigInput) (*mcp.CallToolResult, models.PlatformConfig, error) {
	cfg := h.store.UpdateConfig(store.ConfigPatch{
		BrandName:  input.BrandName,
		Theme:      input.Theme,
		AccentMode: input.AccentMode,
		Toggles:    input.Toggles,
	})
	return nil, cfg, nil
}

type ReorderModulesInput struct {
	From int `json:"from" jsonschema:"Current position of the module"`
	To   int `json:"to" jsonschema:"Position to move the module to"`
}

type ReorderModulesOutput struct {
	ModuleOrder []string `json:"module_order"`
}

func (h *ConfigHandlers) ReorderModules(_ context.Context, request *mcp.CallToolRequest, input ReorderModulesInput) (*mcp.CallToolResult, ReorderModulesOutput, error) {
	order, err := h.store.ReorderModules(input.From, input.To)
	if err != nil {
		return nil, ReorderModulesOutput{}, err
	}
	return nil, ReorderModulesOutput{ModuleOrder: order}, nil
}

type ListModulesInput struct{}

type ListModulesOutput struct {
	Modules []models.ModuleConfig `json:"modules"`
}

func (h *ConfigHandlers) ListModules(_ context.Context, request *mcp.CallToolRequest, input ListModulesInput) (*mcp.CallToolResult, ListModulesOutput, error) {
	return nil, ListModulesOutput{Modules: h.store.Modules()}, nil
}
