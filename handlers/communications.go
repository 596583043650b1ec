// ABOUTME: Communication thread MCP tool handlers
// ABOUTME: Implements the upsert_communication tool
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type CommunicationHandlers struct {
	store *store.Store
}

func NewCommunicationHandlers(s *store.Store) *CommunicationHandlers {
	return &CommunicationHandlers{store: s}
}

type UpsertCommunicationInput struct {
	ID           string   `json:"id,omitempty" jsonschema:"Existing thread ID for updates; omit to create"`
	Title        string   `json:"title,omitempty" jsonschema:"Thread subject (required for creation)"`
	Participants []string `json:"participants,omitempty" jsonschema:"People on the thread"`
	LastMessage  string   `json:"last_message,omitempty" jsonschema:"Most recent message text"`
	Channel      string   `json:"channel,omitempty" jsonschema:"Email, Portal, Phone, or Chat"`
	Sentiment    string   `json:"sentiment,omitempty" jsonschema:"Positive, Neutral, or Negative"`
}

func (h *CommunicationHandlers) UpsertCommunication(_ context.Context, request *mcp.CallToolRequest, input UpsertCommunicationInput) (*mcp.CallToolResult, models.CommunicationThread, error) {
	if input.ID == "" && input.Title == "" {
		return nil, models.CommunicationThread{}, fmt.Errorf("title is required to create a communication thread")
	}

	record := h.store.UpsertCommunication(models.CommunicationThread{
		ID:           input.ID,
		Title:        input.Title,
		Participants: input.Participants,
		LastMessage:  input.LastMessage,
		Channel:      input.Channel,
		Sentiment:    input.Sentiment,
	})
	return nil, record, nil
}
