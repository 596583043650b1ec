// ABOUTME: Quote MCP tool handlers
// ABOUTME: Implements the upsert_quote tool
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type QuoteHandlers struct {
	store *store.Store
}

func NewQuoteHandlers(s *store.Store) *QuoteHandlers {
	return &QuoteHandlers{store: s}
}

type UpsertQuoteInput struct {
	ID              string  `json:"id,omitempty" jsonschema:"Existing quote ID for updates; omit to create"`
	ClientID        string  `json:"client_id" jsonschema:"Client the quote is prepared for"`
	Product         string  `json:"product" jsonschema:"Product line (required for creation)"`
	Coverage        int64   `json:"coverage,omitempty" jsonschema:"Requested coverage amount"`
	PremiumEstimate int64   `json:"premium_estimate,omitempty" jsonschema:"Estimated annual premium"`
	Probability     float64 `json:"probability,omitempty" jsonschema:"Bind probability between 0 and 1"`
	Notes           string  `json:"notes,omitempty" jsonschema:"Free-form notes"`
}

func (h *QuoteHandlers) UpsertQuote(_ context.Context, request *mcp.CallToolRequest, input UpsertQuoteInput) (*mcp.CallToolResult, models.Quote, error) {
	if input.ID == "" && input.Product == "" {
		return nil, models.Quote{}, fmt.Errorf("product is required to create a quote")
	}
	if input.Probability < 0 || input.Probability > 1 {
		return nil, models.Quote{}, fmt.Errorf("probability must be between 0 and 1")
	}

	record := h.store.UpsertQuote(models.Quote{
		ID:              input.ID,
		ClientID:        input.ClientID,
		Product:         input.Product,
		Coverage:        input.Coverage,
		PremiumEstimate: input.PremiumEstimate,
		Probability:     input.Probability,
		Notes:           input.Notes,
	})
	return nil, record, nil
}
