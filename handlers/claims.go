// ABOUTME: Claim MCP tool handlers
// ABOUTME: Implements the upsert_claim tool
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type ClaimHandlers struct {
	store *store.Store
}

func NewClaimHandlers(s *store.Store) *ClaimHandlers {
	return &ClaimHandlers{store: s}
}

type UpsertClaimInput struct {
	ID          string `json:"id,omitempty" jsonschema:"Existing claim ID for updates; omit to create"`
	PolicyID    string `json:"policy_id" jsonschema:"Policy the claim is filed against"`
	ClientID    string `json:"client_id,omitempty" jsonschema:"Client the claim belongs to"`
	Type        string `json:"type" jsonschema:"Claim type (required for creation)"`
	Amount      int64  `json:"amount,omitempty" jsonschema:"Claimed amount"`
	Stage       string `json:"stage,omitempty" jsonschema:"Stage (Filed, Investigating, Approved, Settled, Denied)"`
	Handler     string `json:"handler,omitempty" jsonschema:"Assigned claims handler"`
	LastUpdated string `json:"last_updated,omitempty" jsonschema:"Last update date (YYYY-MM-DD, defaults to today)"`
}

func (h *ClaimHandlers) UpsertClaim(_ context.Context, request *mcp.CallToolRequest, input UpsertClaimInput) (*mcp.CallToolResult, models.Claim, error) {
	if input.ID == "" && input.Type == "" {
		return nil, models.Claim{}, fmt.Errorf("type is required to create a claim")
	}

	record := h.store.UpsertClaim(models.Claim{
		ID:          input.ID,
		PolicyID:    input.PolicyID,
		ClientID:    input.ClientID,
		Type:        input.Type,
		Amount:      input.Amount,
		Stage:       input.Stage,
		Handler:     input.Handler,
		LastUpdated: input.LastUpdated,
	})
	return nil, record, nil
}
