// ABOUTME: Client collection operations
// ABOUTME: Handles create-or-update with duplicate detection and removal
package store

import (
	"strings"

	"github.com/suresphere/atlas/models"
)

// ClientUpsertResult reports the outcome of an upsert. Duplicate detection is
// an outcome, not an error: callers decide whether to merge or discard.
type ClientUpsertResult struct {
	Status      string         `json:"status"`
	Record      models.Client  `json:"record"`
	DuplicateOf *models.Client `json:"duplicate_of,omitempty"`
}

// UpsertClient creates or updates a client.
//
// Create requests (empty ID) run a dedupe scan first: a case-insensitive
// email or name match against an existing client short-circuits to a
// "duplicate" outcome carrying the matched record, and the collection is
// left untouched. The first match in most-recent-first order wins.
//
// Requests carrying an ID skip dedupe and shallow-merge the payload onto the
// existing record; zero-valued payload fields retain the stored values.
func (s *Store) UpsertClient(payload models.Client) ClientUpsertResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID == "" {
		if idx := s.findClientMatch(payload.Name, payload.Email); idx >= 0 {
			match := s.clients[idx]
			return ClientUpsertResult{
				Status:      models.UpsertDuplicate,
				Record:      match,
				DuplicateOf: &match,
			}
		}

		record := payload
		record.ID = newID(prefixClient)
		record.PolicyCount = 0
		if record.Status == "" {
			record.Status = models.ClientProspect
		}
		if record.Company == "" {
			record.Company = record.Name
		}
		if record.Tags == nil {
			record.Tags = []string{}
		}
		s.clients = append([]models.Client{record}, s.clients...)
		return ClientUpsertResult{Status: models.UpsertCreated, Record: record}
	}

	idx := s.clientIndex(payload.ID)
	if idx < 0 {
		// Unknown ID: report the merge result without touching the
		// collection, keeping the operation total.
		record := payload
		if record.Status == "" {
			record.Status = models.ClientActive
		}
		if record.Tags == nil {
			record.Tags = []string{}
		}
		return ClientUpsertResult{Status: models.UpsertUpdated, Record: record}
	}

	merged := mergeClient(s.clients[idx], payload)
	s.clients[idx] = merged
	return ClientUpsertResult{Status: models.UpsertUpdated, Record: merged}
}

// RemoveClient deletes the client with the given ID. Referencing policies and
// claims are left alone; removal does not cascade.
func (s *Store) RemoveClient(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.clientIndex(id)
	if idx < 0 {
		return false
	}
	s.clients = append(s.clients[:idx], s.clients[idx+1:]...)
	return true
}

// GetClient returns the client with the given ID, if present.
func (s *Store) GetClient(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.clientIndex(id); idx >= 0 {
		return s.clients[idx], true
	}
	return models.Client{}, false
}

func (s *Store) clientIndex(id string) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

// findClientMatch scans for a client whose email or name equals the incoming
// values case-insensitively. Collection order is most-recent-first, so the
// newest matching record wins.
func (s *Store) findClientMatch(name, email string) int {
	normName := normalize(name)
	normEmail := normalize(email)
	for i := range s.clients {
		if normEmail != "" && normalize(s.clients[i].Email) == normEmail {
			return i
		}
		if normName != "" && normalize(s.clients[i].Name) == normName {
			return i
		}
	}
	return -1
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func mergeClient(existing, payload models.Client) models.Client {
	merged := existing
	if payload.Name != "" {
		merged.Name = payload.Name
	}
	if payload.Email != "" {
		merged.Email = payload.Email
	}
	if payload.Company != "" {
		merged.Company = payload.Company
	} else if payload.Name != "" && merged.Company == "" {
		merged.Company = payload.Name
	}
	if payload.Status != "" {
		merged.Status = payload.Status
	}
	if payload.Tags != nil {
		merged.Tags = payload.Tags
	}
	if payload.PolicyCount != 0 {
		merged.PolicyCount = payload.PolicyCount
	}
	return merged
}
