// ABOUTME: Keyword search across the six searchable collections
// ABOUTME: Builds a flattened lower-cased corpus and scores term matches
package store

import (
	"sort"
	"strings"
)

// SearchResult is one scored corpus entry.
type SearchResult struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// maxSearchResults caps how many entries a query returns.
const maxSearchResults = 6

// corpus flattens the searchable collections into (id, label) pairs. Labels
// are fixed per-collection field concatenations, lower-cased. Collections
// appear in a fixed sequence: clients, policies, claims, quotes, partners,
// workflows. Commissions, compliance tasks, documents, and communications
// are not searchable.
func (s *Store) corpus() []SearchResult {
	entries := make([]SearchResult, 0,
		len(s.clients)+len(s.policies)+len(s.claims)+len(s.quotes)+len(s.partners)+len(s.workflows))

	for i := range s.clients {
		entries = append(entries, corpusEntry(s.clients[i].ID, s.clients[i].Name+" "+s.clients[i].Email))
	}
	for i := range s.policies {
		entries = append(entries, corpusEntry(s.policies[i].ID, s.policies[i].PolicyNumber+" "+s.policies[i].Product))
	}
	for i := range s.claims {
		entries = append(entries, corpusEntry(s.claims[i].ID, s.claims[i].Type+" "+s.claims[i].Stage))
	}
	for i := range s.quotes {
		entries = append(entries, corpusEntry(s.quotes[i].ID, s.quotes[i].Product+" quote"))
	}
	for i := range s.partners {
		entries = append(entries, corpusEntry(s.partners[i].ID, s.partners[i].Name+" "+s.partners[i].Specialization))
	}
	for i := range s.workflows {
		entries = append(entries, corpusEntry(s.workflows[i].ID, s.workflows[i].Name+" "+s.workflows[i].Trigger))
	}
	return entries
}

func corpusEntry(id, label string) SearchResult {
	return SearchResult{ID: id, Label: strings.ToLower(label)}
}

// GlobalSearch scores the query against the corpus. Each query term counts
// at most once per entry, however often it appears in the label. Zero-score
// entries are dropped, ties keep corpus order, and at most six results are
// returned.
func (s *Store) GlobalSearch(query string) []SearchResult {
	if strings.TrimSpace(query) == "" {
		return []SearchResult{}
	}

	terms := make([]string, 0, 4)
	for _, term := range strings.Split(strings.ToLower(query), " ") {
		if term != "" {
			terms = append(terms, term)
		}
	}

	s.mu.RLock()
	entries := s.corpus()
	s.mu.RUnlock()

	type scored struct {
		SearchResult
		score int
	}

	hits := make([]scored, 0, len(entries))
	for _, entry := range entries {
		score := 0
		for _, term := range terms {
			if strings.Contains(entry.Label, term) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{SearchResult: entry, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > maxSearchResults {
		hits = hits[:maxSearchResults]
	}

	out := make([]SearchResult, len(hits))
	for i, hit := range hits {
		out[i] = hit.SearchResult
	}
	return out
}
