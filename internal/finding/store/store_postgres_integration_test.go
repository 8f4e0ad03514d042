//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"comply/internal/evidence/forms"
	"comply/internal/finding"
	"comply/internal/finding/store"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
	"comply/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	now      time.Time
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.now = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "findings"))
}

func (s *PostgresStoreSuite) create(target finding.Target, age time.Duration) *finding.Finding {
	f := &finding.Finding{
		ID:             id.NewFindingID(),
		OrganizationID: "org_1",
		Type:           finding.TypeSOC2,
		Status:         finding.StatusOpen,
		Content:        "Evidence is incomplete",
		Target:         target,
		CreatedBy:      "usr_auditor",
		CreatedAt:      s.now.Add(-age),
		UpdatedAt:      s.now.Add(-age),
	}
	s.Require().NoError(s.store.Create(context.Background(), f))
	return f
}

func (s *PostgresStoreSuite) TestTargetsRoundTrip() {
	ctx := context.Background()
	targets := []finding.Target{
		finding.TaskTarget{TaskID: "tsk_1"},
		finding.SubmissionTarget{SubmissionID: "sub_1", FormType: forms.FormTypeBoardMeeting},
		finding.FormTypeTarget{FormType: forms.FormTypeNetworkDiagram},
	}
	for _, target := range targets {
		f := s.create(target, 0)
		found, err := s.store.FindByID(ctx, "org_1", f.ID)
		s.Require().NoError(err)
		s.Equal(target, found.Target)
	}

	var persisted string
	s.Require().NoError(s.postgres.DB.QueryRowContext(ctx,
		`SELECT form_type FROM findings WHERE submission_id = 'sub_1'`).Scan(&persisted))
	s.Equal(forms.ToPersisted(forms.FormTypeBoardMeeting).String(), persisted)
}

func (s *PostgresStoreSuite) TestRowWithTwoTargetsIsRejectedBySchema() {
	_, err := s.postgres.DB.ExecContext(context.Background(), `
		INSERT INTO findings (id, organization_id, type, status, content, task_id, form_type, created_by, created_at, updated_at)
		VALUES ('fnd_bad', 'org_1', 'soc2', 'open', 'x', 'tsk_1', 'rbac_matrix', 'usr_1', now(), now())`)
	s.Error(err)
}

func (s *PostgresStoreSuite) TestListFilters() {
	ctx := context.Background()
	older := s.create(finding.TaskTarget{TaskID: "tsk_1"}, time.Hour)
	newer := s.create(finding.FormTypeTarget{FormType: forms.FormTypeRBACMatrix}, 0)

	all, err := s.store.List(ctx, "org_1", finding.ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(newer.ID, all[0].ID)
	s.Equal(older.ID, all[1].ID)

	tasks, err := s.store.List(ctx, "org_1", finding.ListFilter{TargetKind: finding.TargetKindTask, Status: finding.StatusOpen})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal(older.ID, tasks[0].ID)
}

func (s *PostgresStoreSuite) TestUpdateStatusGuard() {
	ctx := context.Background()
	f := s.create(finding.TaskTarget{TaskID: "tsk_1"}, 0)

	update := *f
	update.Status = finding.StatusClosed
	update.UpdatedAt = s.now.Add(time.Minute)
	s.Require().NoError(s.store.UpdateStatus(ctx, &update, finding.StatusOpen))
	s.ErrorIs(s.store.UpdateStatus(ctx, &update, finding.StatusOpen), sentinel.ErrInvalidState)

	update.ID = "fnd_missing"
	s.ErrorIs(s.store.UpdateStatus(ctx, &update, finding.StatusClosed), sentinel.ErrNotFound)
}
