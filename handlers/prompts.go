// ABOUTME: MCP prompt handlers for reusable broking workflow templates
// ABOUTME: Provides standardized prompts for client review, renewals, and claims triage
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type PromptHandlers struct {
	store *store.Store
}

func NewPromptHandlers(s *store.Store) *PromptHandlers {
	return &PromptHandlers{store: s}
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := request.Params.Name
	arguments := request.Params.Arguments
	switch name {
	case "client-summary":
		return h.getClientSummaryPrompt(arguments)
	case "renewal-strategy":
		return h.getRenewalStrategyPrompt(arguments)
	case "claims-triage":
		return h.getClaimsTriagePrompt(arguments)
	default:
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}
}

func (h *PromptHandlers) getClientSummaryPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	clientID, ok := args["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("client_id is required")
	}

	client, ok := h.store.GetClient(clientID)
	if !ok {
		return nil, fmt.Errorf("client not found: %s", clientID)
	}

	var policies []models.Policy
	for _, p := range h.store.Policies() {
		if p.ClientID == clientID {
			policies = append(policies, p)
		}
	}
	var claims []models.Claim
	for _, c := range h.store.Claims() {
		if c.ClientID == clientID {
			claims = append(claims, c)
		}
	}

	var promptText strings.Builder
	promptText.WriteString("Please provide a comprehensive summary of this client:\n\n")
	promptText.WriteString(fmt.Sprintf("Name: %s\n", client.Name))
	if client.Email != "" {
		promptText.WriteString(fmt.Sprintf("Email: %s\n", client.Email))
	}
	if client.Company != "" {
		promptText.WriteString(fmt.Sprintf("Company: %s\n", client.Company))
	}
	promptText.WriteString(fmt.Sprintf("Status: %s\n", client.Status))
	promptText.WriteString(fmt.Sprintf("Policies: %d\n", client.PolicyCount))
	if len(client.Tags) > 0 {
		promptText.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(client.Tags, ", ")))
	}

	if len(policies) > 0 {
		promptText.WriteString("\nPolicy book:\n")
		for _, p := range policies {
			promptText.WriteString(fmt.Sprintf("- %s (%s, %s, renews %s)\n", p.Product, p.PolicyNumber, p.Status, p.RenewalDate))
		}
	}
	if len(claims) > 0 {
		promptText.WriteString("\nOpen claims:\n")
		for _, c := range claims {
			promptText.WriteString(fmt.Sprintf("- %s at stage %s\n", c.Type, c.Stage))
		}
	}

	promptText.WriteString("\nPlease analyze this client and provide:")
	promptText.WriteString("\n1. A brief summary of their risk profile")
	promptText.WriteString("\n2. Cross-sell or coverage-gap opportunities")
	promptText.WriteString("\n3. Recommended next touchpoints")

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Summary for client: %s", client.Name),
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: promptText.String(),
				},
			},
		},
	}, nil
}

func (h *PromptHandlers) getRenewalStrategyPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	policies := h.store.Policies()

	statusCount := make(map[string]int)
	var totalPremium int64
	for _, p := range policies {
		statusCount[p.Status]++
		totalPremium += p.Premium
	}

	var promptText strings.Builder
	promptText.WriteString("Please build a renewal strategy for this policy book:\n\n")
	promptText.WriteString(fmt.Sprintf("Total Policies: %d\n", len(policies)))
	promptText.WriteString(fmt.Sprintf("Total Annual Premium: %d\n", totalPremium))
	promptText.WriteString("\nBy status:\n")
	for status, count := range statusCount {
		promptText.WriteString(fmt.Sprintf("- %s: %d\n", status, count))
	}
	promptText.WriteString("\nUpcoming renewals:\n")
	for _, p := range policies {
		if p.RenewalDate == "" {
			continue
		}
		promptText.WriteString(fmt.Sprintf("- %s (%s) renews %s\n", p.Product, p.PolicyNumber, p.RenewalDate))
	}

	promptText.WriteString("\nPlease provide:")
	promptText.WriteString("\n1. A prioritized renewal contact schedule")
	promptText.WriteString("\n2. Remarketing candidates and why")
	promptText.WriteString("\n3. Retention risks to flag for the account team")

	return &mcp.GetPromptResult{
		Description: "Renewal strategy for the policy book",
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: promptText.String(),
				},
			},
		},
	}, nil
}

func (h *PromptHandlers) getClaimsTriagePrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	claims := h.store.Claims()

	stageCount := make(map[string]int)
	var totalExposure int64
	for _, c := range claims {
		stageCount[c.Stage]++
		totalExposure += c.Amount
	}

	var promptText strings.Builder
	promptText.WriteString("Please triage the current claims workload:\n\n")
	promptText.WriteString(fmt.Sprintf("Total Claims: %d\n", len(claims)))
	promptText.WriteString(fmt.Sprintf("Total Exposure: %d\n", totalExposure))
	promptText.WriteString("\nBy stage:\n")
	for stage, count := range stageCount {
		promptText.WriteString(fmt.Sprintf("- %s: %d\n", stage, count))
	}
	promptText.WriteString("\nLargest claims:\n")
	for _, c := range claims {
		promptText.WriteString(fmt.Sprintf("- %s for %d at stage %s (handler: %s)\n", c.Type, c.Amount, c.Stage, c.Handler))
	}

	promptText.WriteString("\nPlease provide:")
	promptText.WriteString("\n1. Which claims need handler attention first")
	promptText.WriteString("\n2. Claims at risk of breaching response targets")
	promptText.WriteString("\n3. Reserve adequacy observations")

	return &mcp.GetPromptResult{
		Description: "Claims triage briefing",
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: promptText.String(),
				},
			},
		},
	}, nil
}
