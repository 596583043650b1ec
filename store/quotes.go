// ABOUTME: Quote collection operations
package store

import "github.com/suresphere/atlas/models"

// UpsertQuote creates or updates a quote.
func (s *Store) UpsertQuote(payload models.Quote) models.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.ID != "" {
		for i := range s.quotes {
			if s.quotes[i].ID == payload.ID {
				s.quotes[i] = mergeQuote(s.quotes[i], payload)
				return s.quotes[i]
			}
		}
		return payload
	}

	record := payload
	record.ID = newID(prefixQuote)
	s.quotes = append([]models.Quote{record}, s.quotes...)
	return record
}

func mergeQuote(existing, payload models.Quote) models.Quote {
	merged := existing
	if payload.ClientID != "" {
		merged.ClientID = payload.ClientID
	}
	if payload.Product != "" {
		merged.Product = payload.Product
	}
	if payload.Coverage != 0 {
		merged.Coverage = payload.Coverage
	}
	if payload.PremiumEstimate != 0 {
		merged.PremiumEstimate = payload.PremiumEstimate
	}
	if payload.Probability != 0 {
		merged.Probability = payload.Probability
	}
	if payload.Notes != "" {
		merged.Notes = payload.Notes
	}
	return merged
}
