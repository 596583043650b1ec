// ABOUTME: Copilot MCP tool handler
// ABOUTME: Implements the ask_copilot tool over the scripted assistant
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/assistant"
)

type CopilotHandlers struct {
	responder *assistant.Responder
}

func NewCopilotHandlers(r *assistant.Responder) *CopilotHandlers {
	return &CopilotHandlers{responder: r}
}

type AskCopilotInput struct {
	Prompt string `json:"prompt" jsonschema:"Question for the operations copilot"`
}

type AskCopilotOutput struct {
	Answer string `json:"answer"`
}

func (h *CopilotHandlers) AskCopilot(_ context.Context, request *mcp.CallToolRequest, input AskCopilotInput) (*mcp.CallToolResult, AskCopilotOutput, error) {
	if input.Prompt == "" {
		return nil, AskCopilotOutput{}, fmt.Errorf("prompt is required")
	}
	return nil, AskCopilotOutput{Answer: h.responder.Respond(input.Prompt)}, nil
}
