// ABOUTME: Compliance task operations
package store

import "github.com/suresphere/atlas/models"

// UpsertComplianceTask creates or updates a compliance task.
func (s *Store) UpsertComplianceTask(payload models.ComplianceTask) models.ComplianceTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID != "" {
		for i := range s.compliance {
			if s.compliance[i].ID == payload.ID {
				s.compliance[i] = mergeComplianceTask(s.compliance[i], payload)
				return s.compliance[i]
			}
		}
		return payload
	}

	record := payload
	record.ID = newID(prefixCompliance)
	if record.Status == "" {
		record.Status = models.ComplianceOpen
	}
	if record.RiskLevel == "" {
		record.RiskLevel = models.RiskMedium
	}
	s.compliance = append([]models.ComplianceTask{record}, s.compliance...)
	return record
}

func mergeComplianceTask(existing, payload models.ComplianceTask) models.ComplianceTask {
	merged := existing
	if payload.Title != "" {
		merged.Title = payload.Title
	}
	if payload.Owner != "" {
		merged.Owner = payload.Owner
	}
	if payload.DueDate != "" {
		merged.DueDate = payload.DueDate
	}
	if payload.Status != "" {
		merged.Status = payload.Status
	}
	if payload.RiskLevel != "" {
		merged.RiskLevel = payload.RiskLevel
	}
	return merged
}
