package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"comply/internal/evidence/forms"
	"comply/internal/finding"
	"comply/internal/finding/metrics"
	"comply/internal/submission/models"
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
	"comply/pkg/platform/audit"
	"comply/pkg/platform/sentinel"
	txcontext "comply/pkg/platform/tx"
	"comply/pkg/requestcontext"
)

// MaxContentLength bounds the text of a finding.
const MaxContentLength = 5000

var tracer = otel.Tracer("comply/finding")

type Store interface {
	Create(ctx context.Context, f *finding.Finding) error
	FindByID(ctx context.Context, orgID id.OrganizationID, findingID id.FindingID) (*finding.Finding, error)
	List(ctx context.Context, orgID id.OrganizationID, filter finding.ListFilter) ([]*finding.Finding, error)
	UpdateStatus(ctx context.Context, f *finding.Finding, expected finding.Status) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.ComplianceEvent) error
}

// Notifier hands notifications to the delivery pipeline.
type Notifier interface {
	Publish(ctx context.Context, n finding.Notification) error
}

// SubmissionLookup resolves submission targets so a finding never links to
// a submission that does not exist under the named document.
type SubmissionLookup interface {
	Get(ctx context.Context, orgID id.OrganizationID, formType forms.FormType, subID id.SubmissionID) (*models.Submission, error)
}

// Service raises findings and moves them through review.
type Service struct {
	store       Store
	tx          txcontext.Runner
	auditor     AuditPublisher
	notifier    Notifier
	submissions SubmissionLookup
	baseURL     string
	logger      *slog.Logger
	metrics     *metrics.Metrics
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

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithSubmissionLookup(lookup SubmissionLookup) Option {
	return func(s *Service) {
		s.submissions = lookup
	}
}

func WithTxRunner(runner txcontext.Runner) Option {
	return func(s *Service) {
		s.tx = runner
	}
}

// New constructs a Service. baseURL is the application origin used in
// notification links.
func New(store Store, baseURL string, opts ...Option) *Service {
	s := &Service{
		store:   store,
		baseURL: baseURL,
		tx:      txcontext.NoopRunner{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateRequest struct {
	OrganizationID id.OrganizationID
	CreatedBy      id.UserID
	Type           finding.Type
	Content        string
	Target         finding.Target
}

type UpdateStatusRequest struct {
	OrganizationID id.OrganizationID
	FindingID      id.FindingID
	Actor          id.UserID
	Status         finding.Status
}

// Create stores a new open finding and notifies the organization.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*finding.Finding, error) {
	ctx, span := tracer.Start(ctx, "finding.Create")
	defer span.End()

	if req.OrganizationID.IsNil() || req.CreatedBy.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "organization and author are required")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "content is required")
	}
	if len(content) > MaxContentLength {
		return nil, dErrors.New(dErrors.CodeValidation, "content is too long")
	}
	if _, err := finding.ParseType(string(req.Type)); err != nil {
		return nil, err
	}
	if err := finding.ValidateTarget(req.Target); err != nil {
		return nil, err
	}
	if err := s.checkTarget(ctx, req.OrganizationID, req.Target); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("target_kind", string(req.Target.Kind())))

	now := requestcontext.Now(ctx)
	f := &finding.Finding{
		ID:             id.NewFindingID(),
		OrganizationID: req.OrganizationID,
		Type:           req.Type,
		Status:         finding.StatusOpen,
		Content:        content,
		Target:         req.Target,
		CreatedBy:      req.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.Create(ctx, f); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.Wrap(err, dErrors.CodeConflict, "finding already exists")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store finding")
		}
		return s.emit(ctx, audit.ComplianceEvent{
			OrganizationID: f.OrganizationID,
			ActorID:        f.CreatedBy,
			Subject:        f.ID.String(),
			Action:         audit.EventFindingCreated,
			Decision:       string(f.Status),
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, err
	}

	s.metrics.IncCreated(string(f.Type), string(f.Target.Kind()))
	s.logger.InfoContext(ctx, "finding created",
		"request_id", requestcontext.RequestID(ctx),
		"organization_id", f.OrganizationID,
		"finding_id", f.ID,
		"target_kind", f.Target.Kind(),
	)
	s.notify(ctx, finding.NewNotification(finding.EventFindingCreated, f, s.baseURL, "", f.CreatedBy, now))
	return f, nil
}

// UpdateStatus moves a finding along the transition table. Moving to the
// current status is a conflict like any other disallowed transition.
func (s *Service) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*finding.Finding, error) {
	ctx, span := tracer.Start(ctx, "finding.UpdateStatus")
	defer span.End()

	if req.Actor.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "actor is required")
	}

	f, err := s.Get(ctx, req.OrganizationID, req.FindingID)
	if err != nil {
		return nil, err
	}

	previous := f.Status
	now := requestcontext.Now(ctx)
	if err := f.Transition(req.Status, now); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("from", string(previous)),
		attribute.String("to", string(f.Status)),
	)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.UpdateStatus(ctx, f, previous); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrInvalidState):
				return dErrors.Wrap(err, dErrors.CodeConflict, "finding was changed by another request")
			case errors.Is(err, sentinel.ErrNotFound):
				return dErrors.Wrap(err, dErrors.CodeNotFound, "finding not found")
			default:
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store finding status")
			}
		}
		return s.emit(ctx, audit.ComplianceEvent{
			OrganizationID: f.OrganizationID,
			ActorID:        req.Actor,
			Subject:        f.ID.String(),
			Action:         audit.EventFindingStatusChanged,
			Decision:       string(f.Status),
			Reason:         "from " + string(previous),
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "status update failed")
		return nil, err
	}

	s.metrics.IncTransition(string(previous), string(f.Status))
	s.logger.InfoContext(ctx, "finding status changed",
		"request_id", requestcontext.RequestID(ctx),
		"organization_id", f.OrganizationID,
		"finding_id", f.ID,
		"from", previous,
		"to", f.Status,
	)
	s.notify(ctx, finding.NewNotification(finding.EventFindingStatusChanged, f, s.baseURL, previous, req.Actor, now))
	return f, nil
}

func (s *Service) Get(ctx context.Context, orgID id.OrganizationID, findingID id.FindingID) (*finding.Finding, error) {
	f, err := s.store.FindByID(ctx, orgID, findingID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "finding not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load finding")
	}
	return f, nil
}

// List returns the organization's findings, newest first.
func (s *Service) List(ctx context.Context, orgID id.OrganizationID, filter finding.ListFilter) ([]*finding.Finding, error) {
	out, err := s.store.List(ctx, orgID, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list findings")
	}
	return out, nil
}

// URL returns the in-app link of a finding's target.
func (s *Service) URL(f *finding.Finding) string {
	return finding.BuildURL(s.baseURL, f.OrganizationID, f.Target)
}

func (s *Service) checkTarget(ctx context.Context, orgID id.OrganizationID, target finding.Target) error {
	t, ok := target.(finding.SubmissionTarget)
	if !ok || s.submissions == nil {
		return nil
	}
	if _, err := s.submissions.Get(ctx, orgID, t.FormType, t.SubmissionID); err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeInvalidInput, "target submission does not exist")
		}
		return err
	}
	return nil
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

// notify runs after the finding is committed; delivery failures are logged
// and never undo the change.
func (s *Service) notify(ctx context.Context, n finding.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, n); err != nil {
		s.metrics.IncNotification("failed")
		s.logger.ErrorContext(ctx, "failed to publish finding notification",
			"request_id", requestcontext.RequestID(ctx),
			"organization_id", n.OrganizationID,
			"finding_id", n.FindingID,
			"event", n.Event,
			"error", err,
		)
		return
	}
	s.metrics.IncNotification("published")
}
