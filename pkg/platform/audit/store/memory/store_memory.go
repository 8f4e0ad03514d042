package memory

import (
	"context"
	"sync"

	id "comply/pkg/domain"
	audit "comply/pkg/platform/audit"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events map[id.OrganizationID][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.OrganizationID][]audit.Event)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.OrganizationID][]audit.Event)
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.OrganizationID] = append(s.events[event.OrganizationID], event)
	return nil
}

// ListByOrganization returns the most recent events first. limit <= 0 returns
// everything.
func (s *InMemoryStore) ListByOrganization(_ context.Context, orgID id.OrganizationID, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.events[orgID]
	out := make([]audit.Event, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
