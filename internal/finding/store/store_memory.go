package store

import (
	"context"
	"sort"
	"sync"

	"comply/internal/finding"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
)

// InMemoryStore keeps findings in memory. Used in tests and local runs.
type InMemoryStore struct {
	mu       sync.RWMutex
	findings map[id.FindingID]*finding.Finding
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{findings: make(map[id.FindingID]*finding.Finding)}
}

func (s *InMemoryStore) Create(_ context.Context, f *finding.Finding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.findings[f.ID]; exists {
		return sentinel.ErrConflict
	}
	c := *f
	s.findings[f.ID] = &c
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, orgID id.OrganizationID, findingID id.FindingID) (*finding.Finding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.findings[findingID]
	if !ok || f.OrganizationID != orgID {
		return nil, sentinel.ErrNotFound
	}
	c := *f
	return &c, nil
}

// List returns the organization's findings, newest first.
func (s *InMemoryStore) List(_ context.Context, orgID id.OrganizationID, filter finding.ListFilter) ([]*finding.Finding, error) {
	s.mu.RLock()
	out := make([]*finding.Finding, 0)
	for _, f := range s.findings {
		if f.OrganizationID == orgID && filter.Matches(f) {
			c := *f
			out = append(out, &c)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateStatus writes f's status only if the stored finding is still in
// expected.
func (s *InMemoryStore) UpdateStatus(_ context.Context, f *finding.Finding, expected finding.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.findings[f.ID]
	if !ok || stored.OrganizationID != f.OrganizationID {
		return sentinel.ErrNotFound
	}
	if stored.Status != expected {
		return sentinel.ErrInvalidState
	}
	stored.Status = f.Status
	stored.UpdatedAt = f.UpdatedAt
	return nil
}
