// ABOUTME: Web API server for the operations dashboard
// ABOUTME: Serves JSON endpoints at localhost:8080 backed by the record store
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/suresphere/atlas/assistant"
	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/preview"
	"github.com/suresphere/atlas/store"
	"github.com/suresphere/atlas/suggest"
	"github.com/suresphere/atlas/viz"
)

// maxUploadBytes caps document uploads.
const maxUploadBytes = 10 << 20

type Server struct {
	store     *store.Store
	responder *assistant.Responder
	generator *preview.Generator
	mux       *http.ServeMux
}

func NewServer(s *store.Store) *Server {
	srv := &Server{
		store:     s,
		responder: assistant.NewResponder(s),
		generator: preview.NewGenerator(),
		mux:       http.NewServeMux(),
	}

	srv.mux.HandleFunc("/api/dashboard", srv.handleDashboard)
	srv.mux.HandleFunc("/api/clients", srv.handleClients)
	srv.mux.HandleFunc("/api/policies", srv.handlePolicies)
	srv.mux.HandleFunc("/api/claims", srv.handleClaims)
	srv.mux.HandleFunc("/api/quotes", srv.handleQuotes)
	srv.mux.HandleFunc("/api/search", srv.handleSearch)
	srv.mux.HandleFunc("/api/suggest", srv.handleSuggest)
	srv.mux.HandleFunc("/api/modules", srv.handleModules)
	srv.mux.HandleFunc("/api/config", srv.handleConfig)
	srv.mux.HandleFunc("/api/assistant", srv.handleAssistant)
	srv.mux.HandleFunc("/api/documents", srv.handleDocuments)

	return srv
}

// Handler exposes the route table for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting web server at http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	stats := viz.GenerateDashboardStats(s.store)
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, s.store.Clients())
	case http.MethodPost:
		var payload models.Client
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if payload.ID == "" && (payload.Name == "" || payload.Email == "") {
			s.writeError(w, http.StatusBadRequest, "name and email are required")
			return
		}
		result := s.store.UpsertClient(payload)
		status := http.StatusCreated
		if result.Status != models.UpsertCreated {
			status = http.StatusOK
		}
		s.writeJSON(w, status, result)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handlePolicies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, s.store.Policies())
	case http.MethodPost:
		var payload models.Policy
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if payload.ID == "" && payload.PolicyNumber == "" {
			s.writeError(w, http.StatusBadRequest, "policy_number is required")
			return
		}
		record := s.store.UpsertPolicy(payload)
		s.writeJSON(w, http.StatusCreated, record)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleClaims(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, s.store.Claims())
	case http.MethodPost:
		var payload models.Claim
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if payload.ID == "" && payload.Type == "" {
			s.writeError(w, http.StatusBadRequest, "type is required")
			return
		}
		record := s.store.UpsertClaim(payload)
		s.writeJSON(w, http.StatusCreated, record)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, s.store.Quotes())
	case http.MethodPost:
		var payload models.Quote
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if payload.ID == "" && payload.Product == "" {
			s.writeError(w, http.StatusBadRequest, "product is required")
			return
		}
		record := s.store.UpsertQuote(payload)
		s.writeJSON(w, http.StatusCreated, record)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	results := s.store.GlobalSearch(r.URL.Query().Get("q"))
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	field := r.URL.Query().Get("field")
	if field == "" {
		s.writeError(w, http.StatusBadRequest, "field is required")
		return
	}
	context := map[string]string{}
	if coverage := r.URL.Query().Get("coverage"); coverage != "" {
		context["coverage"] = coverage
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"field":       field,
		"suggestions": suggest.Suggest(field, context),
	})
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, s.store.Modules())
	case http.MethodPost:
		var payload struct {
			From int `json:"from"`
			To   int `json:"to"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		order, err := s.store.ReorderModules(payload.From, payload.To)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]interface{}{"module_order": order})
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, s.store.Config())
	case http.MethodPost:
		var payload struct {
			BrandName  string          `json:"brand_name"`
			Theme      string          `json:"theme"`
			AccentMode string          `json:"accent_mode"`
			Toggles    map[string]bool `json:"toggles"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		cfg := s.store.UpdateConfig(store.ConfigPatch{
			BrandName:  payload.BrandName,
			Theme:      payload.Theme,
			AccentMode: payload.AccentMode,
			Toggles:    payload.Toggles,
		})
		s.writeJSON(w, http.StatusOK, cfg)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var payload struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Prompt == "" {
		s.writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"answer": s.responder.Respond(payload.Prompt),
	})
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, s.store.Documents())
	case http.MethodPost:
		s.handleDocumentUpload(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleDocumentUpload accepts a multipart form with a "file" part plus
// optional category and uploaded_by fields. A failed extract is surfaced
// as 422 rather than stored without a preview.
func (s *Server) handleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer func() { _ = file.Close() }()

	extract, err := s.generator.Generate(header.Filename, io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record := s.store.UpsertDocument(models.DocumentRecord{
		Name:       header.Filename,
		Category:   r.FormValue("category"),
		UploadedBy: r.FormValue("uploaded_by"),
		OcrExtract: extract,
	})
	s.writeJSON(w, http.StatusCreated, record)
}
