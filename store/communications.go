// ABOUTME: Communication thread operations
package store

import "github.com/suresphere/atlas/models"

// UpsertCommunication creates or updates a messaging thread.
func (s *Store) UpsertCommunication(payload models.CommunicationThread) models.CommunicationThread {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID != "" {
		for i := range s.communications {
			if s.communications[i].ID == payload.ID {
				s.communications[i] = mergeCommunication(s.communications[i], payload)
				return s.communications[i]
			}
		}
		return payload
	}

	record := payload
	record.ID = newID(prefixCommunication)
	if record.Sentiment == "" {
		record.Sentiment = models.SentimentNeutral
	}
	s.communications = append([]models.CommunicationThread{record}, s.communications...)
	return record
}

func mergeCommunication(existing, payload models.CommunicationThread) models.CommunicationThread {
	merged := existing
	if payload.Title != "" {
		merged.Title = payload.Title
	}
	if payload.Participants != nil {
		merged.Participants = payload.Participants
	}
	if payload.LastMessage != "" {
		merged.LastMessage = payload.LastMessage
	}
	if payload.Channel != "" {
		merged.Channel = payload.Channel
	}
	if payload.Sentiment != "" {
		merged.Sentiment = payload.Sentiment
	}
	return merged
}
