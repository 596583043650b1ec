// ABOUTME: Document record operations
// ABOUTME: Stamps upload dates on new records
package store

import "github.com/suresphere/atlas/models"

// UpsertDocument creates or updates a document record. New records without
// an upload date are stamped with the current date.
func (s *Store) UpsertDocument(payload models.DocumentRecord) models.DocumentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID != "" {
		for i := range s.documents {
			if s.documents[i].ID == payload.ID {
				s.documents[i] = mergeDocument(s.documents[i], payload)
				return s.documents[i]
			}
		}
		return payload
	}

	record := payload
	record.ID = newID(prefixDocument)
	if record.UploadedAt == "" {
		record.UploadedAt = s.today()
	}
	s.documents = append([]models.DocumentRecord{record}, s.documents...)
	return record
}

func mergeDocument(existing, payload models.DocumentRecord) models.DocumentRecord {
	merged := existing
	if payload.Name != "" {
		merged.Name = payload.Name
	}
	if payload.Category != "" {
		merged.Category = payload.Category
	}
	if payload.UploadedBy != "" {
		merged.UploadedBy = payload.UploadedBy
	}
	if payload.UploadedAt != "" {
		merged.UploadedAt = payload.UploadedAt
	}
	if payload.OcrExtract != "" {
		merged.OcrExtract = payload.OcrExtract
	}
	return merged
}
