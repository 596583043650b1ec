// ABOUTME: Commission MCP tool handlers
// ABOUTME: Implements the upsert_commission tool
package handlers

import (
	"context"
	"fmt"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

type CommissionHandlers struct {
	store *store.Store
}

func NewCommissionHandlers(s *store.Store) *CommissionHandlers {
	return &CommissionHandlers{store: s}
}

type UpsertCommissionInput struct {
	ID       string `json:"id,omitempty" jsonschema:"Existing commission ID for updates; omit to create"`
	PolicyID string `json:"policy_id,omitempty" jsonschema:"Policy the commission relates to"`
	Month    string `json:"month,omitempty" jsonschema:"Accounting month as YYYY-MM (required for creation)"`
	Amount   int64  `json:"amount,omitempty" jsonschema:"Commission amount"`
	Status   string `json:"status,omitempty" jsonschema:"Projected, Invoiced, or Received"`
}

func (h *CommissionHandlers) UpsertCommission(_ context.Context, request *mcp.CallToolRequest, input UpsertCommissionInput) (*mcp.CallToolResult, models.CommissionRecord, error) {
	if input.ID == "" && input.Month == "" {
		return nil, models.CommissionRecord{}, fmt.Errorf("month is required to create a commission record")
	}
	if input.Month != "" && !monthPattern.MatchString(input.Month) {
		return nil, models.CommissionRecord{}, fmt.Errorf("month must be formatted as YYYY-MM, got %q", input.Month)
	}

	record := h.store.UpsertCommission(models.CommissionRecord{
		ID:       input.ID,
		PolicyID: input.PolicyID,
		Month:    input.Month,
		Amount:   input.Amount,
		Status:   input.Status,
	})
	return nil, record, nil
}
