// ABOUTME: Partner MCP tool handlers
// ABOUTME: Implements the upsert_partner tool
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type PartnerHandlers struct {
	store *store.Store
}

func NewPartnerHandlers(s *store.Store) *PartnerHandlers {
	return &PartnerHandlers{store: s}
}

type UpsertPartnerInput struct {
	ID             string   `json:"id,omitempty" jsonschema:"Existing partner ID for updates; omit to create"`
	Name           string   `json:"name,omitempty" jsonschema:"Partner name (required for creation)"`
	Specialization string   `json:"specialization,omitempty" jsonschema:"Line of business the partner specializes in"`
	CoverageAreas  []string `json:"coverage_areas,omitempty" jsonschema:"Regions the partner covers"`
	Rating         float64  `json:"rating,omitempty" jsonschema:"Partner rating from 0 to 5"`
	ActiveDeals    int      `json:"active_deals,omitempty" jsonschema:"Number of in-flight deals"`
}

func (h *PartnerHandlers) UpsertPartner(_ context.Context, request *mcp.CallToolRequest, input UpsertPartnerInput) (*mcp.CallToolResult, models.Partner, error) {
	if input.ID == "" && input.Name == "" {
		return nil, models.Partner{}, fmt.Errorf("name is required to create a partner")
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, models.Partner{}, fmt.Errorf("rating must be between 0 and 5")
	}

	record := h.store.UpsertPartner(models.Partner{
		ID:             input.ID,
		Name:           input.Name,
		Specialization: input.Specialization,
		CoverageAreas:  input.CoverageAreas,
		Rating:         input.Rating,
		ActiveDeals:    input.ActiveDeals,
	})
	return nil, record, nil
}
