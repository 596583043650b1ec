// ABOUTME: Document MCP tool handlers
// ABOUTME: Implements upload_document and upsert_document tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/preview"
	"github.com/suresphere/atlas/store"
)

type DocumentHandlers struct {
	store     *store.Store
	generator *preview.Generator
}

func NewDocumentHandlers(s *store.Store, g *preview.Generator) *DocumentHandlers {
	return &DocumentHandlers{store: s, generator: g}
}

type UploadDocumentInput struct {
	Name       string `json:"name" jsonschema:"Document file name"`
	Category   string `json:"category,omitempty" jsonschema:"Category such as Policy, Claim, or KYC"`
	UploadedBy string `json:"uploaded_by,omitempty" jsonschema:"Who uploaded the document"`
	Content    string `json:"content,omitempty" jsonschema:"Document text content used for the extract preview"`
}

func (h *DocumentHandlers) UploadDocument(_ context.Context, request *mcp.CallToolRequest, input UploadDocumentInput) (*mcp.CallToolResult, models.DocumentRecord, error) {
	if input.Name == "" {
		return nil, models.DocumentRecord{}, fmt.Errorf("name is required to upload a document")
	}

	extract, err := h.generator.Generate(input.Name, strings.NewReader(input.Content))
	if err != nil {
		return nil, models.DocumentRecord{}, fmt.Errorf("failed to generate extract: %w", err)
	}

	record := h.store.UpsertDocument(models.DocumentRecord{
		Name:       input.Name,
		Category:   input.Category,
		UploadedBy: input.UploadedBy,
		OcrExtract: extract,
	})
	return nil, record, nil
}

type UpsertDocumentInput struct {
	ID         string `json:"id,omitempty" jsonschema:"Existing document ID for updates; omit to create"`
	Name       string `json:"name,omitempty" jsonschema:"Document file name (required for creation)"`
	Category   string `json:"category,omitempty" jsonschema:"Category such as Policy, Claim, or KYC"`
	UploadedBy string `json:"uploaded_by,omitempty" jsonschema:"Who uploaded the document"`
	UploadedAt string `json:"uploaded_at,omitempty" jsonschema:"Upload date as YYYY-MM-DD; defaults to today"`
}

func (h *DocumentHandlers) UpsertDocument(_ context.Context, request *mcp.CallToolRequest, input UpsertDocumentInput) (*mcp.CallToolResult, models.DocumentRecord, error) {
	if input.ID == "" && input.Name == "" {
		return nil, models.DocumentRecord{}, fmt.Errorf("name is required to create a document record")
	}

	record := h.store.UpsertDocument(models.DocumentRecord{
		ID:         input.ID,
		Name:       input.Name,
		Category:   input.Category,
		UploadedBy: input.UploadedBy,
		UploadedAt: input.UploadedAt,
	})
	return nil, record, nil
}
