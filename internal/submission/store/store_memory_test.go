package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"comply/internal/evidence/forms"
	"comply/internal/submission/models"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) newSubmission(org id.OrganizationID, ft forms.FormType, age time.Duration) *models.Submission {
	sub := &models.Submission{
		ID:             id.NewSubmissionID(),
		OrganizationID: org,
		FormType:       ft,
		Data:           map[string]any{"submissionDate": "2024-03-01"},
		Status:         models.StatusPending,
		SubmittedAt:    s.now.Add(-age),
		SubmittedBy:    "usr_1",
	}
	s.Require().NoError(s.store.Create(context.Background(), sub))
	return sub
}

func (s *InMemoryStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	sub := s.newSubmission("org_1", forms.FormTypeRBACMatrix, 0)

	s.Run("duplicate id conflicts", func() {
		s.ErrorIs(s.store.Create(ctx, sub), sentinel.ErrConflict)
	})

	s.Run("other organizations cannot see it", func() {
		_, err := s.store.FindByID(ctx, "org_2", sub.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned copies are isolated", func() {
		found, err := s.store.FindByID(ctx, "org_1", sub.ID)
		s.Require().NoError(err)
		found.Data["submissionDate"] = "tampered"
		again, _ := s.store.FindByID(ctx, "org_1", sub.ID)
		s.Equal("2024-03-01", again.Data["submissionDate"])
	})
}

func (s *InMemoryStoreSuite) TestLatestByFormType() {
	ctx := context.Background()
	s.newSubmission("org_1", forms.FormTypeBoardMeeting, 72*time.Hour)
	s.newSubmission("org_1", forms.FormTypeBoardMeeting, time.Hour)
	s.newSubmission("org_1", forms.FormTypeAccessRequest, 24*time.Hour)
	s.newSubmission("org_2", forms.FormTypeAccessRequest, 0)

	rows, err := s.store.LatestByFormType(ctx, "org_1")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Equal(forms.PersistedAccessRequest, rows[0].FormType)
	s.Equal(forms.PersistedBoardMeeting, rows[1].FormType)
	s.Equal(s.now.Add(-time.Hour), *rows[1].LastSubmittedAt)
}

func (s *InMemoryStoreSuite) TestListByFormTypes() {
	ctx := context.Background()
	older := s.newSubmission("org_1", forms.FormTypeBoardMeeting, 48*time.Hour)
	newer := s.newSubmission("org_1", forms.FormTypeRiskCommitteeMeeting, time.Hour)
	s.newSubmission("org_1", forms.FormTypeAccessRequest, 0)

	subs, err := s.store.ListByFormTypes(ctx, "org_1", forms.MeetingSubtypes())
	s.Require().NoError(err)
	s.Require().Len(subs, 2)
	s.Equal(newer.ID, subs[0].ID)
	s.Equal(older.ID, subs[1].ID)
}

func (s *InMemoryStoreSuite) TestUpdateReview() {
	ctx := context.Background()
	sub := s.newSubmission("org_1", forms.FormTypeAccessRequest, 0)

	s.Require().NoError(sub.Review(models.ReviewApprove, "usr_rev", "", s.now))
	s.Require().NoError(s.store.UpdateReview(ctx, sub))

	s.Run("second review sees the stored state", func() {
		stale := *sub
		stale.Status = models.StatusRejected
		s.ErrorIs(s.store.UpdateReview(ctx, &stale), sentinel.ErrInvalidState)
	})

	s.Run("unknown submission", func() {
		missing := *sub
		missing.ID = "sub_missing"
		s.ErrorIs(s.store.UpdateReview(ctx, &missing), sentinel.ErrNotFound)
	})

	found, err := s.store.FindByID(ctx, "org_1", sub.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusApproved, found.Status)
	s.Equal(id.UserID("usr_rev"), *found.ReviewedBy)
}
