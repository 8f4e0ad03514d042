// Package ports declares what the compliance overview reads from other
// modules and storage.
package ports

import (
	"context"

	"comply/internal/compliance"
	taskmodels "comply/internal/task/models"
	id "comply/pkg/domain"
)

// SubmissionReader exposes the latest-submission aggregate.
type SubmissionReader interface {
	LatestSubmissions(ctx context.Context, orgID id.OrganizationID) ([]compliance.LatestSubmission, error)
}

// TaskReader loads tasks with the latest run of each automation.
type TaskReader interface {
	ListByOrganization(ctx context.Context, orgID id.OrganizationID) ([]*taskmodels.Task, error)
}

// PolicyScorer reports published over total non-archived policies.
type PolicyScorer interface {
	PolicyProgress(ctx context.Context, orgID id.OrganizationID) (compliance.Progress, error)
}

// PeopleScorer reports onboarded over active members.
type PeopleScorer interface {
	PeopleProgress(ctx context.Context, orgID id.OrganizationID) (compliance.Progress, error)
}

// OverviewCache stores computed overviews. Get returns sentinel.ErrNotFound
// on a miss. Every Invalidate bumps the organization's generation, and Set
// only stores when the generation still matches the one read before the
// overview was computed. It reports false when the entry was skipped.
type OverviewCache interface {
	Get(ctx context.Context, orgID id.OrganizationID) (*compliance.Overview, error)
	Generation(ctx context.Context, orgID id.OrganizationID) (int64, error)
	Set(ctx context.Context, orgID id.OrganizationID, generation int64, overview *compliance.Overview) (bool, error)
	Invalidate(ctx context.Context, orgID id.OrganizationID) error
}
