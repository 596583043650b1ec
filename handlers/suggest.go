// ABOUTME: Field suggestion MCP tool handler
// ABOUTME: Implements the suggest_field_values tool over the canned suggestion engine
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/suggest"
)

type SuggestHandlers struct{}

func NewSuggestHandlers() *SuggestHandlers {
	return &SuggestHandlers{}
}

type SuggestInput struct {
	Field   string            `json:"field" jsonschema:"Field to suggest values for (industry, coverage, carrier, handler, premiumEstimate)"`
	Context map[string]string `json:"context,omitempty" jsonschema:"Context values; premiumEstimate reads the coverage key"`
}

type SuggestOutput struct {
	Field       string   `json:"field"`
	Suggestions []string `json:"suggestions"`
}

func (h *SuggestHandlers) SuggestFieldValues(_ context.Context, request *mcp.CallToolRequest, input SuggestInput) (*mcp.CallToolResult, SuggestOutput, error) {
	if input.Field == "" {
		return nil, SuggestOutput{}, fmt.Errorf("field is required")
	}
	return nil, SuggestOutput{
		Field:       input.Field,
		Suggestions: suggest.Suggest(input.Field, input.Context),
	}, nil
}
