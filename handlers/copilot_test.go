// ABOUTME: Tests for copilot, suggestion, and prompt handlers
// ABOUTME: Validates scripted answers, canned suggestions, and prompt routing
package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/assistant"
	"github.com/suresphere/atlas/store"
)

func TestAskCopilotHandler(t *testing.T) {
	s := store.NewSeeded()
	handler := NewCopilotHandlers(assistant.NewResponder(s))

	_, out, err := handler.AskCopilot(context.Background(), nil, AskCopilotInput{
		Prompt: "What is our renewal strategy this quarter?",
	})
	if err != nil {
		t.Fatalf("AskCopilot failed: %v", err)
	}
	if !strings.Contains(out.Answer, "renewal") {
		t.Errorf("Expected renewal guidance, got %q", out.Answer)
	}

	_, _, err = handler.AskCopilot(context.Background(), nil, AskCopilotInput{})
	if err == nil {
		t.Error("Expected error for empty prompt")
	}
}

func TestSuggestFieldValuesHandler(t *testing.T) {
	handler := NewSuggestHandlers()

	_, out, err := handler.SuggestFieldValues(context.Background(), nil, SuggestInput{
		Field:   "premiumEstimate",
		Context: map[string]string{"coverage": "1000000"},
	})
	if err != nil {
		t.Fatalf("SuggestFieldValues failed: %v", err)
	}
	want := []string{"28000", "32000", "36000"}
	if len(out.Suggestions) != len(want) {
		t.Fatalf("Expected %d suggestions, got %v", len(want), out.Suggestions)
	}
	for i, v := range want {
		if out.Suggestions[i] != v {
			t.Errorf("Suggestion %d: expected %s, got %s", i, v, out.Suggestions[i])
		}
	}

	_, out, err = handler.SuggestFieldValues(context.Background(), nil, SuggestInput{Field: "unknownField"})
	if err != nil {
		t.Fatalf("SuggestFieldValues failed: %v", err)
	}
	if len(out.Suggestions) != 0 {
		t.Errorf("Expected empty suggestions, got %v", out.Suggestions)
	}
}

func TestComplianceDueSoonHandler(t *testing.T) {
	s := store.New()
	handler := NewComplianceHandlers(s)

	if _, _, err := handler.UpsertComplianceTask(context.Background(), nil, UpsertComplianceTaskInput{
		Title:   "File state licensing renewal",
		DueDate: "2099-01-15",
	}); err != nil {
		t.Fatalf("UpsertComplianceTask failed: %v", err)
	}

	_, out, err := handler.ComplianceDueSoon(context.Background(), nil, ComplianceDueSoonInput{Days: 7})
	if err != nil {
		t.Fatalf("ComplianceDueSoon failed: %v", err)
	}
	if out.Count != 0 {
		t.Errorf("Expected no tasks due within 7 days, got %d", out.Count)
	}
}

func TestGetPromptRouting(t *testing.T) {
	s := store.NewSeeded()
	handler := NewPromptHandlers(s)

	result, err := handler.GetPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      "client-summary",
			Arguments: map[string]string{"client_id": "cli-ins-001"},
		},
	})
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(result.Messages))
	}

	_, err = handler.GetPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Name: "unknown-template"},
	})
	if err == nil {
		t.Error("Expected error for unknown prompt")
	}
}
