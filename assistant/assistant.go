// ABOUTME: Scripted chat assistant over store snapshots
// ABOUTME: Keyword-triggered templates, no language understanding
package assistant

import (
	"fmt"
	"strings"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

const greeting = "Hi, I'm Atlas Copilot. Ask me about clients, policies, claims, or let me draft a renewal strategy."

const fallback = "I'm syncing your request with the latest data. Try asking about renewals, claims, or clients for more tailored responses."

// Rule matches a normalized prompt and produces a response from the store.
type Rule struct {
	Name    string
	Match   func(normalized string) bool
	Respond func(s *store.Store, prompt string) string
}

// Responder walks an ordered rule list; the first matching rule answers.
// The rule set is swappable so alternate scripts can be plugged in.
type Responder struct {
	store *store.Store
	rules []Rule
}

// NewResponder returns a responder with the default rule set.
func NewResponder(s *store.Store) *Responder {
	return &Responder{store: s, rules: defaultRules()}
}

// NewResponderWithRules returns a responder using a custom rule set.
func NewResponderWithRules(s *store.Store, rules []Rule) *Responder {
	return &Responder{store: s, rules: rules}
}

// Greeting is the canned opening message.
func (r *Responder) Greeting() string {
	return greeting
}

// Respond answers a prompt with the first matching rule's template.
func (r *Responder) Respond(prompt string) string {
	normalized := strings.ToLower(strings.TrimSpace(prompt))
	if normalized == "" {
		return fallback
	}

	for _, rule := range r.rules {
		if rule.Match(normalized) {
			if answer := rule.Respond(r.store, prompt); answer != "" {
				return answer
			}
		}
	}
	return fallback
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func defaultRules() []Rule {
	return []Rule{
		{
			Name:  "renewal-strategy",
			Match: func(n string) bool { return containsAny(n, "renewal", "strategy") },
			Respond: func(s *store.Store, _ string) string {
				return "Here's a renewal approach:\n" +
					"1. Prioritize Infinite Logistics and Willowbrook Medical.\n" +
					"2. Bundle cyber with marine to offset 4.2% rate increase.\n" +
					"3. Schedule risk engineering visit before May 12.\n" +
					"I've queued these as tasks in Flow Automator."
			},
		},
		{
			Name:  "record-lookup",
			Match: func(n string) bool { return containsAny(n, "client", "policy") },
			Respond: func(s *store.Store, prompt string) string {
				hits := s.GlobalSearch(prompt)
				if len(hits) == 0 {
					return ""
				}
				if len(hits) > 3 {
					hits = hits[:3]
				}
				lines := make([]string, len(hits))
				for i, hit := range hits {
					lines[i] = "• " + hit.Label
				}
				return "I found the following matches:\n" + strings.Join(lines, "\n")
			},
		},
		{
			Name:  "claims-digest",
			Match: func(n string) bool { return strings.Contains(n, "claims") },
			Respond: func(s *store.Store, _ string) string {
				var open []models.Claim
				for _, claim := range s.Claims() {
					if claim.Stage == models.ClaimFiled || claim.Stage == models.ClaimInvestigating {
						open = append(open, claim)
					}
				}
				if len(open) == 0 {
					return "There are 0 active claims. Nothing needs triage right now."
				}
				return fmt.Sprintf("There are %d active claims. Top priority: %s for %d.",
					len(open), open[0].Type, open[0].Amount)
			},
		},
		{
			Name:  "portfolio-summary",
			Match: func(n string) bool { return strings.Contains(n, "summary") },
			Respond: func(s *store.Store, _ string) string {
				clients := len(s.Clients())
				policies := len(s.Policies())
				claims := len(s.Claims())
				denom := policies
				if denom < 1 {
					denom = 1
				}
				lossRatio := float64(claims) / float64(denom) * 42
				return fmt.Sprintf("Portfolio snapshot: %d clients, %d policies, loss ratio %.1f%%.",
					clients, policies, lossRatio)
			},
		},
	}
}
