// ABOUTME: Policy collection operations
// ABOUTME: Maintains the client policy counter as a creation side effect
package store

import "github.com/suresphere/atlas/models"

// UpsertPolicy creates or updates a policy. Creation increments the policy
// counter of the referenced client when one exists; a dangling ClientID is
// stored silently and no client is touched.
func (s *Store) UpsertPolicy(payload models.Policy) models.Policy {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID != "" {
		for i := range s.policies {
			if s.policies[i].ID == payload.ID {
				s.policies[i] = mergePolicy(s.policies[i], payload)
				return s.policies[i]
			}
		}
		return payload
	}

	record := payload
	record.ID = newID(prefixPolicy)
	if record.Status == "" {
		record.Status = models.PolicyPending
	}
	s.policies = append([]models.Policy{record}, s.policies...)

	if idx := s.clientIndex(record.ClientID); idx >= 0 {
		s.clients[idx].PolicyCount++
	}
	return record
}

// GetPolicy returns the policy with the given ID, if present.
func (s *Store) GetPolicy(id string) (models.Policy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.policies {
		if s.policies[i].ID == id {
			return s.policies[i], true
		}
	}
	return models.Policy{}, false
}

// RecountPolicies recomputes every client's policy counter from the policy
// collection. The counter is maintained incrementally on the creation path
// and can drift when seed data or imports bypass it; this puts it back in
// line. Returns the number of clients whose counter changed.
func (s *Store) RecountPolicies() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int, len(s.clients))
	for i := range s.policies {
		counts[s.policies[i].ClientID]++
	}

	changed := 0
	for i := range s.clients {
		if want := counts[s.clients[i].ID]; s.clients[i].PolicyCount != want {
			s.clients[i].PolicyCount = want
			changed++
		}
	}
	return changed
}

func mergePolicy(existing, payload models.Policy) models.Policy {
	merged := existing
	if payload.PolicyNumber != "" {
		merged.PolicyNumber = payload.PolicyNumber
	}
	if payload.ClientID != "" {
		merged.ClientID = payload.ClientID
	}
	if payload.Carrier != "" {
		merged.Carrier = payload.Carrier
	}
	if payload.Product != "" {
		merged.Product = payload.Product
	}
	if payload.Premium != 0 {
		merged.Premium = payload.Premium
	}
	if payload.EffectiveDate != "" {
		merged.EffectiveDate = payload.EffectiveDate
	}
	if payload.RenewalDate != "" {
		merged.RenewalDate = payload.RenewalDate
	}
	if payload.Status != "" {
		merged.Status = payload.Status
	}
	return merged
}
