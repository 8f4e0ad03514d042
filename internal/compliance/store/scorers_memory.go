package store

import (
	"context"
	"sync"

	"comply/internal/compliance"
	id "comply/pkg/domain"
)

// InMemoryScorer returns policy and people progress set by tests or seed
// data. Unknown organizations track nothing.
type InMemoryScorer struct {
	mu       sync.RWMutex
	policies map[id.OrganizationID]compliance.Progress
	people   map[id.OrganizationID]compliance.Progress
}

func NewInMemoryScorer() *InMemoryScorer {
	return &InMemoryScorer{
		policies: make(map[id.OrganizationID]compliance.Progress),
		people:   make(map[id.OrganizationID]compliance.Progress),
	}
}

func (s *InMemoryScorer) SetPolicies(orgID id.OrganizationID, p compliance.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[orgID] = p
}

func (s *InMemoryScorer) SetPeople(orgID id.OrganizationID, p compliance.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people[orgID] = p
}

func (s *InMemoryScorer) PolicyProgress(_ context.Context, orgID id.OrganizationID) (compliance.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policies[orgID], nil
}

func (s *InMemoryScorer) PeopleProgress(_ context.Context, orgID id.OrganizationID) (compliance.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.people[orgID], nil
}
