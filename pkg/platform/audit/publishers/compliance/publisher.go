// Package compliance provides a fail-closed audit publisher for evidence and
// findings events.
//
// Emit writes synchronously; if the write fails the caller receives an error
// and MUST fail the operation that produced the event.
package compliance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	audit "comply/pkg/platform/audit"
	"comply/pkg/requestcontext"
)

// Publisher emits compliance events with fail-closed semantics.
type Publisher struct {
	store   audit.Store
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for error reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// New creates a compliance publisher.
func New(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{
		store: store,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit synchronously writes a compliance event. Missing timestamp, request id
// and client agent are filled from ctx.
func (p *Publisher) Emit(ctx context.Context, event audit.ComplianceEvent) error {
	start := time.Now()

	if event.OrganizationID.IsNil() {
		return fmt.Errorf("compliance event requires OrganizationID")
	}
	if event.Action.Category() != audit.CategoryCompliance {
		return fmt.Errorf("action %q is not a compliance event", event.Action)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientAgent == "" {
		event.ClientAgent = audit.DescribeUserAgent(requestcontext.UserAgent(ctx))
	}

	if err := p.store.Append(ctx, event.ToEvent()); err != nil {
		p.metrics.IncPersistFailures()
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "CRITICAL: compliance audit failed",
				"action", event.Action,
				"organization_id", event.OrganizationID,
				"subject", event.Subject,
				"error", err,
			)
		}
		return fmt.Errorf("compliance audit persistence failed: %w", err)
	}

	p.metrics.ObservePersistDuration(time.Since(start).Seconds())
	p.metrics.IncEventsEmitted()
	return nil
}
