package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"comply/internal/finding"
	"comply/pkg/platform/circuit"
	"comply/pkg/requestcontext"
)

type publisher interface {
	Publish(ctx context.Context, n finding.Notification) error
}

// BreakerPublisher sends to primary until the breaker opens, then to
// fallback. While open, primary is retried at most once per cooldown and the
// breaker closes after enough of those retries succeed.
type BreakerPublisher struct {
	primary  publisher
	fallback publisher
	breaker  *circuit.Breaker
	cooldown time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu          sync.Mutex
	lastAttempt time.Time
}

func NewBreakerPublisher(primary, fallback publisher, breaker *circuit.Breaker, cooldown time.Duration, logger *slog.Logger) *BreakerPublisher {
	return &BreakerPublisher{
		primary:  primary,
		fallback: fallback,
		breaker:  breaker,
		cooldown: cooldown,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *BreakerPublisher) Publish(ctx context.Context, n finding.Notification) error {
	if !p.tryPrimary() {
		return p.fallback.Publish(ctx, n)
	}

	if err := p.primary.Publish(ctx, n); err != nil {
		useFallback, change := p.breaker.RecordFailure()
		if change.Opened {
			p.logger.WarnContext(ctx, "notification circuit opened",
				"request_id", requestcontext.RequestID(ctx),
				"breaker", p.breaker.Name(),
				"error", err,
			)
		}
		if !useFallback {
			return err
		}
		return p.fallback.Publish(ctx, n)
	}

	if _, change := p.breaker.RecordSuccess(); change.Closed {
		p.logger.InfoContext(ctx, "notification circuit closed",
			"request_id", requestcontext.RequestID(ctx),
			"breaker", p.breaker.Name(),
		)
	}
	return nil
}

func (p *BreakerPublisher) tryPrimary() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.breaker.IsOpen() && now.Sub(p.lastAttempt) < p.cooldown {
		return false
	}
	p.lastAttempt = now
	return true
}
