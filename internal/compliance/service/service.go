package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"comply/internal/compliance"
	"comply/internal/compliance/metrics"
	"comply/internal/compliance/ports"
	"comply/internal/evidence/forms"
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
	"comply/pkg/platform/sentinel"
	"comply/pkg/requestcontext"
)

// gatherTimeout bounds the parallel reads behind one overview.
const gatherTimeout = 5 * time.Second

var tracer = otel.Tracer("comply/compliance")

// Service computes compliance overviews and document breakdowns.
type Service struct {
	submissions ports.SubmissionReader
	tasks       ports.TaskReader
	policies    ports.PolicyScorer
	people      ports.PeopleScorer
	cache       ports.OverviewCache
	window      time.Duration
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

// WithCache enables the overview cache.
func WithCache(cache ports.OverviewCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithStalenessWindow overrides the fallback document staleness window.
func WithStalenessWindow(window time.Duration) Option {
	return func(s *Service) {
		s.window = window
	}
}

func New(
	submissions ports.SubmissionReader,
	tasks ports.TaskReader,
	policies ports.PolicyScorer,
	people ports.PeopleScorer,
	opts ...Option,
) *Service {
	s := &Service{
		submissions: submissions,
		tasks:       tasks,
		policies:    policies,
		people:      people,
		window:      compliance.DefaultStalenessWindow,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Overview returns the organization's compliance dashboard, from cache when
// a fresh copy exists.
func (s *Service) Overview(ctx context.Context, orgID id.OrganizationID) (*compliance.Overview, error) {
	ctx, span := tracer.Start(ctx, "compliance.Overview",
		trace.WithAttributes(attribute.String("organization_id", orgID.String())),
	)
	defer span.End()

	if cached := s.cached(ctx, orgID); cached != nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	generation, cacheable := s.generation(ctx, orgID)

	start := time.Now()
	inputs, err := s.gather(ctx, orgID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "gather failed")
		s.logger.ErrorContext(ctx, "failed to gather overview inputs",
			"request_id", requestcontext.RequestID(ctx),
			"organization_id", orgID,
			"error", err,
		)
		return nil, toDomainError(err)
	}

	now := requestcontext.Now(ctx)
	docs := s.documentsProgress(inputs.latest, now)
	overview := compliance.BuildOverview(orgID.String(), inputs.policies, inputs.tasks, docs, inputs.people, now)
	s.metrics.ObserveOverviewLatency(time.Since(start))

	if cacheable {
		stored, err := s.cache.Set(ctx, orgID, generation, &overview)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "failed to cache overview",
				"organization_id", orgID,
				"error", err,
			)
		case !stored:
			s.logger.DebugContext(ctx, "overview invalidated while computing, not cached",
				"organization_id", orgID,
			)
		}
	}

	s.logger.InfoContext(ctx, "overview computed",
		"request_id", requestcontext.RequestID(ctx),
		"organization_id", orgID,
		"score", overview.Score,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &overview, nil
}

// Documents returns the per-document freshness breakdown. It is never cached.
func (s *Service) Documents(ctx context.Context, orgID id.OrganizationID) (*compliance.DocumentsProgress, error) {
	ctx, span := tracer.Start(ctx, "compliance.Documents",
		trace.WithAttributes(attribute.String("organization_id", orgID.String())),
	)
	defer span.End()

	latest, err := s.submissions.LatestSubmissions(ctx, orgID)
	if err != nil {
		span.RecordError(err)
		return nil, toDomainError(err)
	}
	progress := s.documentsProgress(latest, requestcontext.Now(ctx))
	return &progress, nil
}

// Invalidate drops the cached overview of an organization.
func (s *Service) Invalidate(ctx context.Context, orgID id.OrganizationID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, orgID)
}

func (s *Service) documentsProgress(latest []compliance.LatestSubmission, now time.Time) compliance.DocumentsProgress {
	return compliance.ComputeDocumentsProgress(compliance.StatusesFromLatest(latest), forms.Definitions(), now, s.window)
}

func (s *Service) cached(ctx context.Context, orgID id.OrganizationID) *compliance.Overview {
	if s.cache == nil {
		return nil
	}
	overview, err := s.cache.Get(ctx, orgID)
	switch {
	case err == nil:
		s.metrics.IncCacheLookup("hit")
		return overview
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.IncCacheLookup("miss")
	default:
		s.metrics.IncCacheLookup("error")
		s.logger.WarnContext(ctx, "overview cache read failed",
			"organization_id", orgID,
			"error", err,
		)
	}
	return nil
}

// generation reads the cache generation before the inputs are gathered. A
// failed read disables caching for this computation.
func (s *Service) generation(ctx context.Context, orgID id.OrganizationID) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	generation, err := s.cache.Generation(ctx, orgID)
	if err != nil {
		s.logger.WarnContext(ctx, "overview cache generation read failed",
			"organization_id", orgID,
			"error", err,
		)
		return 0, false
	}
	return generation, true
}

func toDomainError(err error) error {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "timed out computing compliance overview")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to compute compliance overview")
}
