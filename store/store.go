// ABOUTME: In-memory record store for all broking collections
// ABOUTME: Owns collection state, guards mutation, and hands out snapshots
package store

import (
	"sync"
	"time"

	"github.com/suresphere/atlas/models"
)

// Store holds every collection and the platform configuration. Collections
// are ordered most-recent-first; records live for the process lifetime.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	config         models.PlatformConfig
	clients        []models.Client
	policies       []models.Policy
	claims         []models.Claim
	quotes         []models.Quote
	commissions    []models.CommissionRecord
	compliance     []models.ComplianceTask
	documents      []models.DocumentRecord
	partners       []models.Partner
	communications []models.CommunicationThread
	workflows      []models.Workflow
}

// New returns an empty store with the default platform configuration.
func New() *Store {
	return &Store{
		now:    time.Now,
		config: defaultConfig(),
	}
}

// NewSeeded returns a store preloaded with the demo book of business.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

// SetClock overrides the store's time source. Used by tests and by callers
// that need reproducible date stamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) today() string {
	return s.now().Format(models.DateLayout)
}

// Clients returns a point-in-time copy of the client collection.
func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) Policies() []models.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Policy, len(s.policies))
	copy(out, s.policies)
	return out
}

func (s *Store) Claims() []models.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Claim, len(s.claims))
	copy(out, s.claims)
	return out
}

func (s *Store) Quotes() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

func (s *Store) Commissions() []models.CommissionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CommissionRecord, len(s.commissions))
	copy(out, s.commissions)
	return out
}

func (s *Store) ComplianceTasks() []models.ComplianceTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ComplianceTask, len(s.compliance))
	copy(out, s.compliance)
	return out
}

func (s *Store) Documents() []models.DocumentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DocumentRecord, len(s.documents))
	copy(out, s.documents)
	return out
}

func (s *Store) Partners() []models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Partner, len(s.partners))
	copy(out, s.partners)
	return out
}

func (s *Store) Communications() []models.CommunicationThread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CommunicationThread, len(s.communications))
	copy(out, s.communications)
	return out
}

func (s *Store) Workflows() []models.Workflow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Workflow, len(s.workflows))
	copy(out, s.workflows)
	return out
}
