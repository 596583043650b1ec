// ABOUTME: Client MCP tool handlers
// ABOUTME: Implements upsert_client, merge_clients, and remove_client tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type ClientHandlers struct {
	store *store.Store
}

func NewClientHandlers(s *store.Store) *ClientHandlers {
	return &ClientHandlers{store: s}
}

type UpsertClientInput struct {
	ID      string   `json:"id,omitempty" jsonschema:"Existing client ID for updates; omit to create"`
	Name    string   `json:"name" jsonschema:"Client name (required for creation)"`
	Email   string   `json:"email" jsonschema:"Client email (required for creation)"`
	Company string   `json:"company,omitempty" jsonschema:"Company name (defaults to client name)"`
	Status  string   `json:"status,omitempty" jsonschema:"Client status (Active, Prospect, Dormant)"`
	Tags    []string `json:"tags,omitempty" jsonschema:"Tag list"`
}

type UpsertClientOutput struct {
	Status      string         `json:"status"`
	Record      models.Client  `json:"record"`
	DuplicateOf *models.Client `json:"duplicate_of,omitempty"`
}

func (h *ClientHandlers) UpsertClient(_ context.Context, request *mcp.CallToolRequest, input UpsertClientInput) (*mcp.CallToolResult, UpsertClientOutput, error) {
	if input.ID == "" && (input.Name == "" || input.Email == "") {
		return nil, UpsertClientOutput{}, fmt.Errorf("name and email are required to create a client")
	}

	result := h.store.UpsertClient(models.Client{
		ID:      input.ID,
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
		Status:  input.Status,
		Tags:    input.Tags,
	})

	return nil, UpsertClientOutput{
		Status:      result.Status,
		Record:      result.Record,
		DuplicateOf: result.DuplicateOf,
	}, nil
}

type MergeClientsInput struct {
	IntoID string   `json:"into_id" jsonschema:"ID of the surviving client record (required)"`
	Name   string   `json:"name,omitempty" jsonschema:"Name to apply to the merged record"`
	Email  string   `json:"email,omitempty" jsonschema:"Email to apply to the merged record"`
	Tags   []string `json:"tags,omitempty" jsonschema:"Tags to union into the surviving record"`
}

// MergeClients composes the duplicate-merge path: it resubmits an update
// against the surviving record with a union of the tag lists. The store
// itself never merges.
func (h *ClientHandlers) MergeClients(_ context.Context, request *mcp.CallToolRequest, input MergeClientsInput) (*mcp.CallToolResult, UpsertClientOutput, error) {
	if input.IntoID == "" {
		return nil, UpsertClientOutput{}, fmt.Errorf("into_id is required")
	}

	existing, ok := h.store.GetClient(input.IntoID)
	if !ok {
		return nil, UpsertClientOutput{}, fmt.Errorf("client not found: %s", input.IntoID)
	}

	tags := unionTags(existing.Tags, input.Tags)
	result := h.store.UpsertClient(models.Client{
		ID:    input.IntoID,
		Name:  input.Name,
		Email: input.Email,
		Tags:  tags,
	})

	return nil, UpsertClientOutput{Status: result.Status, Record: result.Record}, nil
}

type RemoveClientInput struct {
	ID string `json:"id" jsonschema:"Client ID (required)"`
}

type RemoveClientOutput struct {
	Removed bool   `json:"removed"`
	Message string `json:"message"`
}

func (h *ClientHandlers) RemoveClient(_ context.Context, request *mcp.CallToolRequest, input RemoveClientInput) (*mcp.CallToolResult, RemoveClientOutput, error) {
	if input.ID == "" {
		return nil, RemoveClientOutput{}, fmt.Errorf("id is required")
	}

	removed := h.store.RemoveClient(input.ID)
	msg := fmt.Sprintf("Removed client: %s", input.ID)
	if !removed {
		msg = fmt.Sprintf("No client with ID: %s", input.ID)
	}
	return nil, RemoveClientOutput{Removed: removed, Message: msg}, nil
}

func unionTags(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, tag := range list {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}
