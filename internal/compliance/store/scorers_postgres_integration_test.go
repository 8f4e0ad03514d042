//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"comply/internal/compliance"
	"comply/internal/compliance/store"
	"comply/pkg/testutil/containers"
)

type PostgresScorerSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	scorer   *store.PostgresScorer
}

func TestPostgresScorerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresScorerSuite))
}

func (s *PostgresScorerSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.scorer = store.NewPostgresScorer(s.postgres.DB)
}

func (s *PostgresScorerSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "policies", "members"))
}

func (s *PostgresScorerSuite) exec(query string, args ...any) {
	_, err := s.postgres.DB.ExecContext(context.Background(), query, args...)
	s.Require().NoError(err)
}

func (s *PostgresScorerSuite) TestPolicyProgressIgnoresArchived() {
	s.exec(`INSERT INTO policies (id, organization_id, title, status) VALUES
		('pol_1', 'org_1', 'Access control', 'published'),
		('pol_2', 'org_1', 'Backups', 'draft'),
		('pol_3', 'org_1', 'Legacy', 'archived'),
		('pol_4', 'org_2', 'Other', 'published')`)

	p, err := s.scorer.PolicyProgress(context.Background(), "org_1")
	s.Require().NoError(err)
	s.Equal(compliance.Progress{Done: 1, Total: 2}, p)
}

func (s *PostgresScorerSuite) TestPeopleProgressCountsActiveMembers() {
	s.exec(`INSERT INTO members (id, organization_id, status, onboarding_completed_at) VALUES
		('mem_1', 'org_1', 'active', $1),
		('mem_2', 'org_1', 'active', NULL),
		('mem_3', 'org_1', 'deactivated', $1),
		('mem_4', 'org_1', 'invited', NULL)`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	p, err := s.scorer.PeopleProgress(context.Background(), "org_1")
	s.Require().NoError(err)
	s.Equal(compliance.Progress{Done: 1, Total: 2}, p)
}

func (s *PostgresScorerSuite) TestEmptyOrganization() {
	p, err := s.scorer.PolicyProgress(context.Background(), "org_empty")
	s.Require().NoError(err)
	s.Equal(compliance.Progress{}, p)
}
