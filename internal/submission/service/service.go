package service

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"comply/internal/compliance"
	"comply/internal/evidence/forms"
	"comply/internal/evidence/validation"
	"comply/internal/submission/metrics"
	"comply/internal/submission/models"
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
	"comply/pkg/platform/audit"
	"comply/pkg/platform/sentinel"
	txcontext "comply/pkg/platform/tx"
	"comply/pkg/requestcontext"
)

// DateLayout is the layout of submissionDate values set by the server.
const DateLayout = "2006-01-02"

var tracer = otel.Tracer("comply/submission")

type Store interface {
	Create(ctx context.Context, sub *models.Submission) error
	FindByID(ctx context.Context, orgID id.OrganizationID, subID id.SubmissionID) (*models.Submission, error)
	ListByFormTypes(ctx context.Context, orgID id.OrganizationID, formTypes []forms.FormType) ([]*models.Submission, error)
	LatestByFormType(ctx context.Context, orgID id.OrganizationID) ([]compliance.LatestSubmission, error)
	UpdateReview(ctx context.Context, sub *models.Submission) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.ComplianceEvent) error
}

// OverviewCache is invalidated whenever an organization's document
// freshness may have changed.
type OverviewCache interface {
	Invalidate(ctx context.Context, orgID id.OrganizationID) error
}

// Service accepts, lists and reviews evidence submissions.
type Service struct {
	store   Store
	tx      txcontext.Runner
	auditor AuditPublisher
	cache   OverviewCache
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = publisher
	}
}

func WithOverviewCache(cache OverviewCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithTxRunner(runner txcontext.Runner) Option {
	return func(s *Service) {
		s.tx = runner
	}
}

// New constructs a Service. Without a tx runner, store and audit writes are
// not grouped.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		tx:     txcontext.NoopRunner{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitRequest is a submission for the document at FormType. Submissions to
// the meeting document must name one of the meeting subtypes.
type SubmitRequest struct {
	OrganizationID id.OrganizationID
	FormType       forms.FormType
	Subtype        *forms.FormType
	SubmittedBy    id.UserID
	Data           map[string]any
}

type ReviewRequest struct {
	OrganizationID id.OrganizationID
	FormType       forms.FormType
	SubmissionID   id.SubmissionID
	Reviewer       id.UserID
	Action         models.ReviewAction
	Reason         string
}

// Submit validates and stores a submission. The audit event is written in the
// same unit of work; if it cannot be persisted the submission is rolled back.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*models.Submission, error) {
	ctx, span := tracer.Start(ctx, "submission.Submit")
	defer span.End()

	if req.OrganizationID.IsNil() || req.SubmittedBy.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "organization and submitter are required")
	}

	stored, payload, err := s.prepare(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, "invalid submission")
		return nil, err
	}
	span.SetAttributes(attribute.String("form_type", stored.String()))

	now := requestcontext.Now(ctx)

	sub := &models.Submission{
		ID:             id.NewSubmissionID(),
		OrganizationID: req.OrganizationID,
		FormType:       stored,
		Data:           payload,
		Status:         models.StatusPending,
		SubmittedAt:    now,
		SubmittedBy:    req.SubmittedBy,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.Create(ctx, sub); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.Wrap(err, dErrors.CodeConflict, "submission already exists")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store submission")
		}
		return s.emit(ctx, audit.ComplianceEvent{
			OrganizationID: sub.OrganizationID,
			ActorID:        sub.SubmittedBy,
			Subject:        sub.ID.String(),
			Action:         audit.EventSubmissionCreated,
			Decision:       string(sub.FormType),
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "submit failed")
		return nil, err
	}

	s.metrics.IncSubmission(stored.String())
	s.invalidate(ctx, sub.OrganizationID)
	s.logger.InfoContext(ctx, "submission created",
		"request_id", requestcontext.RequestID(ctx),
		"organization_id", sub.OrganizationID,
		"submission_id", sub.ID,
		"form_type", sub.FormType,
	)
	return sub, nil
}

// Validate runs the same checks as Submit without storing anything.
func (s *Service) Validate(ctx context.Context, req SubmitRequest) (validation.Payload, error) {
	_, payload, err := s.prepare(ctx, req)
	return payload, err
}

// prepare resolves the stored form type, stamps submissionDate for auto-dated
// forms and validates the result.
func (s *Service) prepare(ctx context.Context, req SubmitRequest) (forms.FormType, validation.Payload, error) {
	stored, err := storedFormType(req.FormType, req.Subtype)
	if err != nil {
		return "", nil, err
	}
	def, ok := forms.Lookup(stored)
	if !ok {
		return "", nil, dErrors.New(dErrors.CodeNotFound, "unknown form type")
	}

	data := maps.Clone(req.Data)
	if data == nil {
		data = map[string]any{}
	}
	if def.SubmissionDateMode == forms.SubmissionDateAuto {
		data["submissionDate"] = requestcontext.Now(ctx).Format(DateLayout)
	}

	payload, err := validation.Validate(stored, data)
	if err != nil {
		s.metrics.IncValidationFailure(stored.String())
		return "", nil, dErrors.Wrap(err, dErrors.CodeValidation, "submission data is invalid")
	}
	return stored, payload, nil
}

// Review approves or rejects a pending submission.
func (s *Service) Review(ctx context.Context, req ReviewRequest) (*models.Submission, error) {
	ctx, span := tracer.Start(ctx, "submission.Review")
	defer span.End()

	if req.Reviewer.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "reviewer is required")
	}

	sub, err := s.Get(ctx, req.OrganizationID, req.FormType, req.SubmissionID)
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	if err := sub.Review(req.Action, req.Reviewer, req.Reason, now); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.UpdateReview(ctx, sub); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrInvalidState):
				return dErrors.Wrap(err, dErrors.CodeConflict, "submission has already been reviewed")
			case errors.Is(err, sentinel.ErrNotFound):
				return dErrors.Wrap(err, dErrors.CodeNotFound, "submission not found")
			default:
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store review")
			}
		}
		return s.emit(ctx, audit.ComplianceEvent{
			OrganizationID: sub.OrganizationID,
			ActorID:        req.Reviewer,
			Subject:        sub.ID.String(),
			Action:         audit.EventSubmissionReviewed,
			Decision:       string(sub.Status),
			Reason:         req.Reason,
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "review failed")
		return nil, err
	}

	s.metrics.IncReview(string(req.Action))
	s.logger.InfoContext(ctx, "submission reviewed",
		"request_id", requestcontext.RequestID(ctx),
		"organization_id", sub.OrganizationID,
		"submission_id", sub.ID,
		"status", sub.Status,
	)
	return sub, nil
}

// Get returns a submission belonging to the document at formType.
func (s *Service) Get(ctx context.Context, orgID id.OrganizationID, formType forms.FormType, subID id.SubmissionID) (*models.Submission, error) {
	sub, err := s.store.FindByID(ctx, orgID, subID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "submission not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load submission")
	}
	if !sub.MatchesFormType(formType) {
		return nil, dErrors.New(dErrors.CodeNotFound, "submission not found")
	}
	return sub, nil
}

// List returns the document's submissions, newest first. The meeting
// document lists the submissions of every meeting subtype.
func (s *Service) List(ctx context.Context, orgID id.OrganizationID, formType forms.FormType) ([]*models.Submission, error) {
	subs, err := s.store.ListByFormTypes(ctx, orgID, models.StoredFormTypes(formType))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list submissions")
	}
	return subs, nil
}

// LatestSubmissions returns the newest submission time per stored form type.
func (s *Service) LatestSubmissions(ctx context.Context, orgID id.OrganizationID) ([]compliance.LatestSubmission, error) {
	rows, err := s.store.LatestByFormType(ctx, orgID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to aggregate submissions")
	}
	return rows, nil
}

func (s *Service) emit(ctx context.Context, event audit.ComplianceEvent) error {
	if s.auditor == nil {
		return nil
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record audit event")
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, orgID id.OrganizationID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, orgID); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate overview cache",
			"organization_id", orgID,
			"error", err,
		)
	}
}

// storedFormType resolves the form type a submission is stored under.
func storedFormType(formType forms.FormType, subtype *forms.FormType) (forms.FormType, error) {
	if formType != forms.FormTypeMeeting {
		if subtype != nil && *subtype != formType {
			return "", dErrors.New(dErrors.CodeInvalidInput, "subtype is only accepted for meeting submissions")
		}
		return formType, nil
	}
	if subtype == nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "meeting submissions require a subtype")
	}
	if !subtype.IsMeetingSubtype() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "subtype must be a meeting type")
	}
	return *subtype, nil
}
