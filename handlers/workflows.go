// ABOUTME: Workflow MCP tool handlers
// ABOUTME: Implements upsert_workflow and toggle_workflow tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type WorkflowHandlers struct {
	store *store.Store
}

func NewWorkflowHandlers(s *store.Store) *WorkflowHandlers {
	return &WorkflowHandlers{store: s}
}

type WorkflowStepInput struct {
	Title string `json:"title" jsonschema:"Step title"`
	Owner string `json:"owner,omitempty" jsonschema:"Who owns the step"`
	SLA   string `json:"sla,omitempty" jsonschema:"Service level target, e.g. 24h"`
}

type UpsertWorkflowInput struct {
	ID      string              `json:"id,omitempty" jsonschema:"Existing workflow ID for updates; omit to create"`
	Name    string              `json:"name,omitempty" jsonschema:"Workflow name (required for creation)"`
	Trigger string              `json:"trigger,omitempty" jsonschema:"Event that starts the workflow"`
	Active  *bool               `json:"active,omitempty" jsonschema:"Whether the workflow runs automatically; omit to leave unchanged"`
	Steps   []WorkflowStepInput `json:"steps,omitempty" jsonschema:"Ordered workflow steps"`
}

func (h *WorkflowHandlers) UpsertWorkflow(_ context.Context, request *mcp.CallToolRequest, input UpsertWorkflowInput) (*mcp.CallToolResult, models.Workflow, error) {
	if input.ID == "" && input.Name == "" {
		return nil, models.Workflow{}, fmt.Errorf("name is required to create a workflow")
	}

	var steps []models.WorkflowStep
	if input.Steps != nil {
		steps = make([]models.WorkflowStep, 0, len(input.Steps))
		for _, step := range input.Steps {
			steps = append(steps, models.WorkflowStep{
				Title: step.Title,
				Owner: step.Owner,
				SLA:   step.SLA,
			})
		}
	}

	record := h.store.UpsertWorkflow(store.WorkflowPatch{
		ID:      input.ID,
		Name:    input.Name,
		Trigger: input.Trigger,
		Active:  input.Active,
		Steps:   steps,
	})
	return nil, record, nil
}

type ToggleWorkflowInput struct {
	ID     string `json:"id" jsonschema:"Workflow ID to toggle"`
	Active bool   `json:"active" jsonschema:"New active state"`
}

func (h *WorkflowHandlers) ToggleWorkflow(_ context.Context, request *mcp.CallToolRequest, input ToggleWorkflowInput) (*mcp.CallToolResult, models.Workflow, error) {
	if input.ID == "" {
		return nil, models.Workflow{}, fmt.Errorf("id is required")
	}

	var existing *models.Workflow
	for _, w := range h.store.Workflows() {
		if w.ID == input.ID {
			existing = &w
			break
		}
	}
	if existing == nil {
		return nil, models.Workflow{}, fmt.Errorf("workflow not found: %s", input.ID)
	}

	record := h.store.UpsertWorkflow(store.WorkflowPatch{ID: input.ID, Active: &input.Active})
	return nil, record, nil
}
