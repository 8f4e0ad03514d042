package store

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"comply/internal/compliance"
	"comply/internal/evidence/forms"
	"comply/internal/submission/models"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
)

// InMemoryStore keeps submissions in memory. Used in tests and local runs.
type InMemoryStore struct {
	mu          sync.RWMutex
	submissions map[id.SubmissionID]*models.Submission
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{submissions: make(map[id.SubmissionID]*models.Submission)}
}

func (s *InMemoryStore) Create(_ context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.submissions[sub.ID]; exists {
		return sentinel.ErrConflict
	}
	s.submissions[sub.ID] = clone(sub)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, orgID id.OrganizationID, subID id.SubmissionID) (*models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.submissions[subID]
	if !ok || sub.OrganizationID != orgID {
		return nil, sentinel.ErrNotFound
	}
	return clone(sub), nil
}

// ListByFormTypes returns the organization's submissions of the given form
// types, newest first.
func (s *InMemoryStore) ListByFormTypes(_ context.Context, orgID id.OrganizationID, formTypes []forms.FormType) ([]*models.Submission, error) {
	wanted := make(map[forms.FormType]bool, len(formTypes))
	for _, ft := range formTypes {
		wanted[ft] = true
	}

	s.mu.RLock()
	out := make([]*models.Submission, 0)
	for _, sub := range s.submissions {
		if sub.OrganizationID == orgID && wanted[sub.FormType] {
			out = append(out, clone(sub))
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

// LatestByFormType returns max(submittedAt) per stored form type.
func (s *InMemoryStore) LatestByFormType(_ context.Context, orgID id.OrganizationID) ([]compliance.LatestSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := make(map[forms.PersistedFormType]time.Time)
	for _, sub := range s.submissions {
		if sub.OrganizationID != orgID {
			continue
		}
		p := forms.ToPersisted(sub.FormType)
		if cur, ok := latest[p]; !ok || sub.SubmittedAt.After(cur) {
			latest[p] = sub.SubmittedAt
		}
	}

	out := make([]compliance.LatestSubmission, 0, len(latest))
	for p, at := range latest {
		at := at
		out = append(out, compliance.LatestSubmission{FormType: p, LastSubmittedAt: &at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FormType < out[j].FormType })
	return out, nil
}

// UpdateReview stores the review fields, only if the stored submission is
// still pending.
func (s *InMemoryStore) UpdateReview(_ context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.submissions[sub.ID]
	if !ok || stored.OrganizationID != sub.OrganizationID {
		return sentinel.ErrNotFound
	}
	if !stored.IsPending() {
		return sentinel.ErrInvalidState
	}
	stored.Status = sub.Status
	stored.ReviewedBy = sub.ReviewedBy
	stored.ReviewedAt = sub.ReviewedAt
	stored.ReviewReason = sub.ReviewReason
	return nil
}

func clone(sub *models.Submission) *models.Submission {
	c := *sub
	c.Data = maps.Clone(sub.Data)
	return &c
}
