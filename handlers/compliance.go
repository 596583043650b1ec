// ABOUTME: Compliance MCP tool handlers
// ABOUTME: Implements upsert_compliance_task and compliance_due_soon tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

type ComplianceHandlers struct {
	store *store.Store
}

func NewComplianceHandlers(s *store.Store) *ComplianceHandlers {
	return &ComplianceHandlers{store: s}
}

type UpsertComplianceTaskInput struct {
	ID        string `json:"id,omitempty" jsonschema:"Existing task ID for updates; omit to create"`
	Title     string `json:"title,omitempty" jsonschema:"Task title (required for creation)"`
	Owner     string `json:"owner,omitempty" jsonschema:"Person responsible"`
	DueDate   string `json:"due_date,omitempty" jsonschema:"Due date as YYYY-MM-DD"`
	Status    string `json:"status,omitempty" jsonschema:"Open, In Review, or Closed"`
	RiskLevel string `json:"risk_level,omitempty" jsonschema:"Low, Medium, or High"`
}

func (h *ComplianceHandlers) UpsertComplianceTask(_ context.Context, request *mcp.CallToolRequest, input UpsertComplianceTaskInput) (*mcp.CallToolResult, models.ComplianceTask, error) {
	if input.ID == "" && input.Title == "" {
		return nil, models.ComplianceTask{}, fmt.Errorf("title is required to create a compliance task")
	}
	if input.DueDate != "" {
		if _, err := time.Parse(models.DateLayout, input.DueDate); err != nil {
			return nil, models.ComplianceTask{}, fmt.Errorf("invalid due_date %q: %w", input.DueDate, err)
		}
	}

	record := h.store.UpsertComplianceTask(models.ComplianceTask{
		ID:        input.ID,
		Title:     input.Title,
		Owner:     input.Owner,
		DueDate:   input.DueDate,
		Status:    input.Status,
		RiskLevel: input.RiskLevel,
	})
	return nil, record, nil
}

type ComplianceDueSoonInput struct {
	Days int `json:"days,omitempty" jsonschema:"Window in days, defaults to 30"`
}

type ComplianceDueSoonOutput struct {
	Tasks []models.ComplianceTask `json:"tasks"`
	Count int                     `json:"count"`
}

func (h *ComplianceHandlers) ComplianceDueSoon(_ context.Context, request *mcp.CallToolRequest, input ComplianceDueSoonInput) (*mcp.CallToolResult, ComplianceDueSoonOutput, error) {
	days := input.Days
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	due := []models.ComplianceTask{}
	for _, task := range h.store.ComplianceTasks() {
		if task.Status == models.ComplianceClosed {
			continue
		}
		if task.DueWithin(now, days) {
			due = append(due, task)
		}
	}
	return nil, ComplianceDueSoonOutput{Tasks: due, Count: len(due)}, nil
}
