// ABOUTME: Claim collection operations
// ABOUTME: Create-or-update with no referential checks against policies
package store

import "github.com/suresphere/atlas/models"

// UpsertClaim creates or updates a claim. PolicyID and ClientID references
// are stored as-is; nothing validates them.
func (s *Store) UpsertClaim(payload models.Claim) models.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID != "" {
		for i := range s.claims {
			if s.claims[i].ID == payload.ID {
				s.claims[i] = mergeClaim(s.claims[i], payload)
				return s.claims[i]
			}
		}
		return payload
	}

	record := payload
	record.ID = newID(prefixClaim)
	if record.Stage == "" {
		record.Stage = models.ClaimFiled
	}
	if record.LastUpdated == "" {
		record.LastUpdated = s.today()
	}
	s.claims = append([]models.Claim{record}, s.claims...)
	return record
}

func mergeClaim(existing, payload models.Claim) models.Claim {
	merged := existing
	if payload.PolicyID != "" {
		merged.PolicyID = payload.PolicyID
	}
	if payload.ClientID != "" {
		merged.ClientID = payload.ClientID
	}
	if payload.Type != "" {
		merged.Type = payload.Type
	}
	if payload.Amount != 0 {
		merged.Amount = payload.Amount
	}
	if payload.Stage != "" {
		merged.Stage = payload.Stage
	}
	if payload.Handler != "" {
		merged.Handler = payload.Handler
	}
	if payload.LastUpdated != "" {
		merged.LastUpdated = payload.LastUpdated
	}
	return merged
}
