// ABOUTME: Universal query tool handler
// ABOUTME: Implements filtering across all dashboard collections plus global search
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/store"
)

type QueryHandlers struct {
	store *store.Store
}

func NewQueryHandlers(s *store.Store) *QueryHandlers {
	return &QueryHandlers{store: s}
}

type QueryRecordsInput struct {
	EntityType string `json:"entity_type" jsonschema:"Collection to query (client, policy, claim, quote, commission, compliance, document, partner, communication, workflow)"`
	Status     string `json:"status,omitempty" jsonschema:"Filter by status or stage where the collection has one"`
	ClientID   string `json:"client_id,omitempty" jsonschema:"Filter by owning client where the collection links to one"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum results to return (default 10)"`
}

type QueryRecordsOutput struct {
	EntityType string        `json:"entity_type"`
	Results    []interface{} `json:"results"`
	Count      int           `json:"count"`
}

func (h *QueryHandlers) QueryRecords(_ context.Context, request *mcp.CallToolRequest, input QueryRecordsInput) (*mcp.CallToolResult, QueryRecordsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}

	var results []interface{}
	switch input.EntityType {
	case "client":
		for _, r := range h.store.Clients() {
			if input.Status != "" && !strings.EqualFold(r.Status, input.Status) {
				continue
			}
			results = append(results, r)
		}
	case "policy":
		for _, r := range h.store.Policies() {
			if input.Status != "" && !strings.EqualFold(r.Status, input.Status) {
				continue
			}
			if input.ClientID != "" && r.ClientID != input.ClientID {
				continue
			}
			results = append(results, r)
		}
	case "claim":
		for _, r := range h.store.Claims() {
			if input.Status != "" && !strings.EqualFold(r.Stage, input.Status) {
				continue
			}
			if input.ClientID != "" && r.ClientID != input.ClientID {
				continue
			}
			results = append(results, r)
		}
	case "quote":
		for _, r := range h.store.Quotes() {
			if input.ClientID != "" && r.ClientID != input.ClientID {
				continue
			}
			results = append(results, r)
		}
	case "commission":
		for _, r := range h.store.Commissions() {
			if input.Status != "" && !strings.EqualFold(r.Status, input.Status) {
				continue
			}
			results = append(results, r)
		}
	case "compliance":
		for _, r := range h.store.ComplianceTasks() {
			if input.Status != "" && !strings.EqualFold(r.Status, input.Status) {
				continue
			}
			results = append(results, r)
		}
	case "document":
		for _, r := range h.store.Documents() {
			results = append(results, r)
		}
	case "partner":
		for _, r := range h.store.Partners() {
			results = append(results, r)
		}
	case "communication":
		for _, r := range h.store.Communications() {
			if input.Status != "" && !strings.EqualFold(r.Sentiment, input.Status) {
				continue
			}
			results = append(results, r)
		}
	case "workflow":
		for _, r := range h.store.Workflows() {
			results = append(results, r)
		}
	default:
		return nil, QueryRecordsOutput{}, fmt.Errorf("invalid entity_type: %s (valid: client, policy, claim, quote, commission, compliance, document, partner, communication, workflow)", input.EntityType)
	}

	if len(results) > input.Limit {
		results = results[:input.Limit]
	}
	return &mcp.CallToolResult{}, QueryRecordsOutput{
		EntityType: input.EntityType,
		Results:    results,
		Count:      len(results),
	}, nil
}

type GlobalSearchInput struct {
	Query string `json:"query" jsonschema:"Keywords to match across clients, policies, claims, quotes, partners, and workflows"`
}

type GlobalSearchOutput struct {
	Results []store.SearchResult `json:"results"`
	Count   int                  `json:"count"`
}

func (h *QueryHandlers) GlobalSearch(_ context.Context, request *mcp.CallToolRequest, input GlobalSearchInput) (*mcp.CallToolResult, GlobalSearchOutput, error) {
	hits := h.store.GlobalSearch(input.Query)
	return nil, GlobalSearchOutput{Results: hits, Count: len(hits)}, nil
}
