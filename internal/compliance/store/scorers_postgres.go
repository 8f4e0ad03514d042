package store

import (
	"context"
	"database/sql"
	"fmt"

	"comply/internal/compliance"
	id "comply/pkg/domain"
)

// PostgresScorer counts policies and people for the overview.
type PostgresScorer struct {
	db *sql.DB
}

func NewPostgresScorer(db *sql.DB) *PostgresScorer {
	return &PostgresScorer{db: db}
}

// PolicyProgress is published over every policy that is not archived.
func (s *PostgresScorer) PolicyProgress(ctx context.Context, orgID id.OrganizationID) (compliance.Progress, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'published'), COUNT(*)
		FROM policies
		WHERE organization_id = $1 AND status <> 'archived'
	`
	var p compliance.Progress
	if err := s.db.QueryRowContext(ctx, query, orgID.String()).Scan(&p.Done, &p.Total); err != nil {
		return compliance.Progress{}, fmt.Errorf("count policies: %w", err)
	}
	return p, nil
}

// PeopleProgress is members who finished onboarding over active members.
func (s *PostgresScorer) PeopleProgress(ctx context.Context, orgID id.OrganizationID) (compliance.Progress, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE onboarding_completed_at IS NOT NULL), COUNT(*)
		FROM members
		WHERE organization_id = $1 AND status = 'active'
	`
	var p compliance.Progress
	if err := s.db.QueryRowContext(ctx, query, orgID.String()).Scan(&p.Done, &p.Total); err != nil {
		return compliance.Progress{}, fmt.Errorf("count members: %w", err)
	}
	return p, nil
}
