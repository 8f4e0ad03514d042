package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher,Notifier,SubmissionLookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"comply/internal/evidence/forms"
	"comply/internal/finding"
	"comply/internal/finding/service/mocks"
	"comply/internal/submission/models"
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
	"comply/pkg/platform/audit"
	"comply/pkg/platform/sentinel"
	"comply/pkg/requestcontext"
)

const baseURL = "https://app.example.com"

type ServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	store       *mocks.MockStore
	auditor     *mocks.MockAuditPublisher
	notifier    *mocks.MockNotifier
	submissions *mocks.MockSubmissionLookup
	service     *Service
	ctx         context.Context
	now         time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.auditor = mocks.NewMockAuditPublisher(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.submissions = mocks.NewMockSubmissionLookup(s.ctrl)
	s.service = New(s.store, baseURL,
		WithAuditPublisher(s.auditor),
		WithNotifier(s.notifier),
		WithSubmissionLookup(s.submissions),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.now = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) createRequest(target finding.Target) CreateRequest {
	return CreateRequest{
		OrganizationID: "org_1",
		CreatedBy:      "usr_auditor",
		Type:           finding.TypeSOC2,
		Content:        "  Quarterly access review is missing sign-off  ",
		Target:         target,
	}
}

func (s *ServiceSuite) TestCreate() {
	s.Run("stores an open finding, audits it and notifies with the target link", func() {
		var stored *finding.Finding
		s.store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *finding.Finding) error {
				stored = f
				return nil
			})
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e audit.ComplianceEvent) error {
				s.Equal(audit.EventFindingCreated, e.Action)
				s.Equal(id.UserID("usr_auditor"), e.ActorID)
				return nil
			})
		s.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n finding.Notification) error {
				s.Equal(finding.EventFindingCreated, n.Event)
				s.Equal("https://app.example.com/org_1/tasks/tsk_7", n.URL)
				s.Equal(finding.TargetKindTask, n.TargetKind)
				s.Empty(n.PreviousStatus)
				return nil
			})

		f, err := s.service.Create(s.ctx, s.createRequest(finding.TaskTarget{TaskID: "tsk_7"}))
		s.Require().NoError(err)
		s.Same(stored, f)
		s.Equal(finding.StatusOpen, f.Status)
		s.Equal("Quarterly access review is missing sign-off", f.Content)
		s.Equal(s.now, f.CreatedAt)
	})

	s.Run("submission target must exist under the named document", func() {
		target := finding.SubmissionTarget{SubmissionID: "sub_1", FormType: forms.FormTypeBoardMeeting}
		s.submissions.EXPECT().
			Get(gomock.Any(), id.OrganizationID("org_1"), forms.FormTypeBoardMeeting, id.SubmissionID("sub_1")).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "submission not found"))

		_, err := s.service.Create(s.ctx, s.createRequest(target))
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})

	s.Run("existing submission target is accepted", func() {
		target := finding.SubmissionTarget{SubmissionID: "sub_1", FormType: forms.FormTypeBoardMeeting}
		s.submissions.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.Submission{ID: "sub_1", FormType: forms.FormTypeBoardMeeting}, nil)
		s.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n finding.Notification) error {
				s.Equal("https://app.example.com/org_1/documents/board-meeting/submissions/sub_1", n.URL)
				return nil
			})

		_, err := s.service.Create(s.ctx, s.createRequest(target))
		s.Require().NoError(err)
	})

	s.Run("notification failure does not fail the request", func() {
		s.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		f, err := s.service.Create(s.ctx, s.createRequest(finding.FormTypeTarget{FormType: forms.FormTypeRBACMatrix}))
		s.Require().NoError(err)
		s.NotNil(f)
	})

	s.Run("audit failure fails the request and skips the notification", func() {
		s.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := s.service.Create(s.ctx, s.createRequest(finding.TaskTarget{TaskID: "tsk_7"}))
		s.True(dErrors.Is(err, dErrors.CodeInternal))
	})

	s.Run("rejects incomplete input", func() {
		req := s.createRequest(finding.TaskTarget{TaskID: "tsk_7"})
		req.Content = "   "
		_, err := s.service.Create(s.ctx, req)
		s.True(dErrors.Is(err, dErrors.CodeValidation))

		req = s.createRequest(nil)
		_, err = s.service.Create(s.ctx, req)
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))

		req = s.createRequest(finding.TaskTarget{TaskID: "tsk_7"})
		req.Type = "pci"
		_, err = s.service.Create(s.ctx, req)
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))

		req = s.createRequest(finding.TaskTarget{TaskID: "tsk_7"})
		req.CreatedBy = ""
		_, err = s.service.Create(s.ctx, req)
		s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
	})
}

func (s *ServiceSuite) existing(status finding.Status) *finding.Finding {
	return &finding.Finding{
		ID:             "fnd_1",
		OrganizationID: "org_1",
		Type:           finding.TypeISO27001,
		Status:         status,
		Content:        "Board minutes lack approval",
		Target:         finding.FormTypeTarget{FormType: forms.FormTypeMeeting},
		CreatedBy:      "usr_auditor",
		CreatedAt:      s.now.Add(-24 * time.Hour),
		UpdatedAt:      s.now.Add(-24 * time.Hour),
	}
}

func (s *ServiceSuite) TestUpdateStatus() {
	req := UpdateStatusRequest{
		OrganizationID: "org_1",
		FindingID:      "fnd_1",
		Actor:          "usr_owner",
		Status:         finding.StatusReadyForReview,
	}

	s.Run("allowed transition is stored with the previous status as guard", func() {
		s.store.EXPECT().FindByID(gomock.Any(), id.OrganizationID("org_1"), id.FindingID("fnd_1")).
			Return(s.existing(finding.StatusOpen), nil)
		s.store.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), finding.StatusOpen).Return(nil)
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e audit.ComplianceEvent) error {
				s.Equal(audit.EventFindingStatusChanged, e.Action)
				s.Equal(string(finding.StatusReadyForReview), e.Decision)
				return nil
			})
		s.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n finding.Notification) error {
				s.Equal(finding.EventFindingStatusChanged, n.Event)
				s.Equal(finding.StatusOpen, n.PreviousStatus)
				s.Equal("https://app.example.com/org_1/documents/meeting", n.URL)
				return nil
			})

		f, err := s.service.UpdateStatus(s.ctx, req)
		s.Require().NoError(err)
		s.Equal(finding.StatusReadyForReview, f.Status)
		s.Equal(s.now, f.UpdatedAt)
	})

	s.Run("disallowed transition is a conflict", func() {
		s.store.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.existing(finding.StatusClosed), nil)

		_, err := s.service.UpdateStatus(s.ctx, req)
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("concurrent change is a conflict", func() {
		s.store.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.existing(finding.StatusOpen), nil)
		s.store.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(sentinel.ErrInvalidState)

		_, err := s.service.UpdateStatus(s.ctx, req)
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("unknown finding", func() {
		s.store.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.UpdateStatus(s.ctx, req)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestList() {
	filter := finding.ListFilter{Status: finding.StatusOpen}
	s.store.EXPECT().List(gomock.Any(), id.OrganizationID("org_1"), filter).
		Return([]*finding.Finding{s.existing(finding.StatusOpen)}, nil)

	got, err := s.service.List(s.ctx, "org_1", filter)
	s.Require().NoError(err)
	s.Len(got, 1)
	s.Equal("https://app.example.com/org_1/documents/meeting", s.service.URL(got[0]))
}
