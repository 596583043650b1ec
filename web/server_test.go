// ABOUTME: Tests for the web API server
// ABOUTME: Exercises JSON endpoints, upload handling, and error statuses
package web

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(store.NewSeeded())
}

func TestGetClients(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var clients []models.Client
	if err := json.NewDecoder(rec.Body).Decode(&clients); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(clients) == 0 {
		t.Error("Expected seeded clients")
	}
}

func TestPostClientCreatesRecord(t *testing.T) {
	srv := newTestServer(t)

	body := strings.NewReader(`{"name":"Atlas Freight Co","email":"risk@atlasfreight.example"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/clients", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var result store.ClientUpsertResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Status != models.UpsertCreated {
		t.Errorf("Expected created, got %q", result.Status)
	}
}

func TestPostClientDuplicateReturns200(t *testing.T) {
	srv := newTestServer(t)

	body := strings.NewReader(`{"name":"Someone Else","email":"risk@willowbrook-med.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/clients", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for duplicate, got %d", rec.Code)
	}

	var result store.ClientUpsertResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Status != models.UpsertDuplicate {
		t.Errorf("Expected duplicate, got %q", result.Status)
	}
}

func TestPostClientValidation(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{"name":"No Email"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=willowbrook", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var payload struct {
		Results []store.SearchResult `json:"results"`
		Count   int                  `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if payload.Count == 0 {
		t.Fatal("Expected search hits")
	}
	if payload.Results[0].ID != "cli-ins-002" {
		t.Errorf("Expected cli-ins-002 first, got %s", payload.Results[0].ID)
	}
}

func TestSearchEndpointEmptyQuery(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	// The contract is a list even with nothing to return.
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Errorf("Expected empty results array, got %s", rec.Body.String())
	}
}

func TestSuggestEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/suggest?field=premiumEstimate&coverage=1000000", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	want := []string{"28000", "32000", "36000"}
	if len(payload.Suggestions) != len(want) {
		t.Fatalf("Expected %v, got %v", want, payload.Suggestions)
	}
	for i := range want {
		if payload.Suggestions[i] != want[i] {
			t.Errorf("Suggestion %d: expected %s, got %s", i, want[i], payload.Suggestions[i])
		}
	}
}

func TestModulesReorder(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/modules", strings.NewReader(`{"from":0,"to":2}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/modules", strings.NewReader(`{"from":0,"to":99}`))
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for out-of-range, got %d", rec.Code)
	}
}

func TestAssistantEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader(`{"prompt":"give me a summary"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var payload struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !strings.Contains(payload.Answer, "Portfolio snapshot") {
		t.Errorf("Expected portfolio summary, got %q", payload.Answer)
	}
}

func TestDocumentUpload(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "slip.pdf")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("Placement slip for marine cargo cover.")); err != nil {
		t.Fatalf("Failed to write part: %v", err)
	}
	if err := mw.WriteField("category", "Policy"); err != nil {
		t.Fatalf("Failed to write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var record models.DocumentRecord
	if err := json.NewDecoder(rec.Body).Decode(&record); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !strings.Contains(record.OcrExtract, "slip.pdf") {
		t.Errorf("Extract missing file name: %q", record.OcrExtract)
	}
	if record.Category != "Policy" {
		t.Errorf("Expected category Policy, got %q", record.Category)
	}
}

func TestDocumentUploadRequiresFile(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("category", "Claim"); err != nil {
		t.Fatalf("Failed to write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/clients", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}
