// ABOUTME: Carrier partner operations
package store

import "github.com/suresphere/atlas/models"

// UpsertPartner creates or updates a carrier partner.
func (s *Store) UpsertPartner(payload models.Partner) models.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID != "" {
		for i := range s.partners {
			if s.partners[i].ID == payload.ID {
				s.partners[i] = mergePartner(s.partners[i], payload)
				return s.partners[i]
			}
		}
		return payload
	}

	record := payload
	record.ID = newID(prefixPartner)
	s.partners = append([]models.Partner{record}, s.partners...)
	return record
}

func mergePartner(existing, payload models.Partner) models.Partner {
	merged := existing
	if payload.Name != "" {
		merged.Name = payload.Name
	}
	if payload.Specialization != "" {
		merged.Specialization = payload.Specialization
	}
	if payload.CoverageAreas != nil {
		merged.CoverageAreas = payload.CoverageAreas
	}
	if payload.Rating != 0 {
		merged.Rating = payload.Rating
	}
	if payload.ActiveDeals != 0 {
		merged.ActiveDeals = payload.ActiveDeals
	}
	return merged
}
