// ABOUTME: Policy MCP tool handlers
// ABOUTME: Implements upsert_policy and recount_policies tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type PolicyHandlers struct {
	store *store.Store
}

func NewPolicyHandlers(s *store.Store) *PolicyHandlers {
	return &PolicyHandlers{store: s}
}

type UpsertPolicyInput struct {
	ID            string `json:"id,omitempty" jsonschema:"Existing policy ID for updates; omit to create"`
	PolicyNumber  string `json:"policy_number" jsonschema:"Carrier policy number (required for creation)"`
	ClientID      string `json:"client_id" jsonschema:"Owning client ID; stored even when no client matches"`
	Carrier       string `json:"carrier,omitempty" jsonschema:"Carrier name"`
	Product       string `json:"product,omitempty" jsonschema:"Product line"`
	Premium       int64  `json:"premium,omitempty" jsonschema:"Annual premium in whole currency units"`
	EffectiveDate string `json:"effective_date,omitempty" jsonschema:"Effective date (YYYY-MM-DD)"`
	RenewalDate   string `json:"renewal_date,omitempty" jsonschema:"Renewal date (YYYY-MM-DD)"`
	Status        string `json:"status,omitempty" jsonschema:"Policy status (Active, Pending, Lapsed)"`
}

func (h *PolicyHandlers) UpsertPolicy(_ context.Context, request *mcp.CallToolRequest, input UpsertPolicyInput) (*mcp.CallToolResult, models.Policy, error) {
	if input.ID == "" && input.PolicyNumber == "" {
		return nil, models.Policy{}, fmt.Errorf("policy_number is required to create a policy")
	}

	record := h.store.UpsertPolicy(models.Policy{
		ID:            input.ID,
		PolicyNumber:  input.PolicyNumber,
		ClientID:      input.ClientID,
		Carrier:       input.Carrier,
		Product:       input.Product,
		Premium:       input.Premium,
		EffectiveDate: input.EffectiveDate,
		RenewalDate:   input.RenewalDate,
		Status:        input.Status,
	})
	return nil, record, nil
}

type RecountPoliciesInput struct{}

type RecountPoliciesOutput struct {
	ClientsChanged int `json:"clients_changed"`
}

// RecountPolicies reconciles drifted client policy counters against the
// policy collection.
func (h *PolicyHandlers) RecountPolicies(_ context.Context, request *mcp.CallToolRequest, input RecountPoliciesInput) (*mcp.CallToolResult, RecountPoliciesOutput, error) {
	return nil, RecountPoliciesOutput{ClientsChanged: h.store.RecountPolicies()}, nil
}
