// ABOUTME: Tests for the scripted assistant rule matcher
// ABOUTME: Verifies rule selection, search integration, and fallback
package assistant

import (
	"strings"
	"testing"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

func TestRenewalRule(t *testing.T) {
	r := NewResponder(store.NewSeeded())

	got := r.Respond("Draft a renewal strategy for my top accounts")
	if !strings.Contains(got, "renewal approach") {
		t.Errorf("Expected renewal template, got %q", got)
	}
}

func TestRecordLookupUsesSearch(t *testing.T) {
	r := NewResponder(store.NewSeeded())

	got := r.Respond("client willowbrook")
	if !strings.Contains(got, "I found the following matches:") {
		t.Fatalf("Expected search response, got %q", got)
	}
	if !strings.Contains(got, "willowbrook medical group") {
		t.Errorf("Expected willowbrook hit, got %q", got)
	}
}

func TestRecordLookupCapsAtThree(t *testing.T) {
	s := store.New()
	for _, name := range []string{"Atlas One", "Atlas Two", "Atlas Three", "Atlas Four"} {
		s.UpsertClient(models.Client{Name: name, Email: name + "@example.com"})
	}
	r := NewResponder(s)

	got := r.Respond("find client atlas")
	if n := strings.Count(got, "• "); n != 3 {
		t.Errorf("Expected 3 bullets, got %d in %q", n, got)
	}
}

func TestClaimsDigest(t *testing.T) {
	r := NewResponder(store.NewSeeded())

	got := r.Respond("How are claims looking?")
	if !strings.Contains(got, "There are 1 active claims.") {
		t.Errorf("Expected one active claim in digest, got %q", got)
	}
	if !strings.Contains(got, "Cargo Loss") {
		t.Errorf("Expected top-priority claim type, got %q", got)
	}
}

func TestSummaryRule(t *testing.T) {
	r := NewResponder(store.NewSeeded())

	got := r.Respond("Give me a summary")
	if !strings.Contains(got, "3 clients, 3 policies") {
		t.Errorf("Expected live counts, got %q", got)
	}
}

func TestFallback(t *testing.T) {
	r := NewResponder(store.NewSeeded())

	got := r.Respond("What's the weather in Rotterdam?")
	if !strings.Contains(got, "Try asking about renewals") {
		t.Errorf("Expected fallback, got %q", got)
	}
}

func TestLookupWithNoHitsFallsThrough(t *testing.T) {
	r := NewResponder(store.New())

	got := r.Respond("client zzzznope")
	if !strings.Contains(got, "Try asking about renewals") {
		t.Errorf("Expected fallback when search has no hits, got %q", got)
	}
}

func TestConversationTranscript(t *testing.T) {
	conv := NewConversation(NewResponder(store.NewSeeded()))

	reply := conv.Ask("summary please")
	if reply.Role != RoleAssistant {
		t.Errorf("Expected assistant reply, got role %s", reply.Role)
	}

	msgs := conv.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Expected greeting + question + reply, got %d messages", len(msgs))
	}
	if msgs[0].ID != "seed" || msgs[0].Role != RoleAssistant {
		t.Error("Greeting should open the transcript")
	}
	if msgs[1].Role != RoleUser || msgs[1].Content != "summary please" {
		t.Errorf("User message malformed: %+v", msgs[1])
	}
	if msgs[1].ID == msgs[2].ID {
		t.Error("Message IDs must be unique")
	}
}
