// ABOUTME: Commission record operations
package store

import "github.com/suresphere/atlas/models"

// UpsertCommission creates or updates a commission record.
func (s *Store) UpsertCommission(payload models.CommissionRecord) models.CommissionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID != "" {
		for i := range s.commissions {
			if s.commissions[i].ID == payload.ID {
				s.commissions[i] = mergeCommission(s.commissions[i], payload)
				return s.commissions[i]
			}
		}
		return payload
	}

	record := payload
	record.ID = newID(prefixCommission)
	if record.Status == "" {
		record.Status = models.CommissionProjected
	}
	s.commissions = append([]models.CommissionRecord{record}, s.commissions...)
	return record
}

func mergeCommission(existing, payload models.CommissionRecord) models.CommissionRecord {
	merged := existing
	if payload.PolicyID != "" {
		merged.PolicyID = payload.PolicyID
	}
	if payload.Month != "" {
		merged.Month = payload.Month
	}
	if payload.Amount != 0 {
		merged.Amount = payload.Amount
	}
	if payload.Status != "" {
		merged.Status = payload.Status
	}
	return merged
}
