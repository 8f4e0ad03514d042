package notifier

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comply/internal/finding"
	"comply/pkg/platform/circuit"
)

type countingPublisher struct {
	calls int
	err   error
}

func (p *countingPublisher) Publish(context.Context, finding.Notification) error {
	p.calls++
	return p.err
}

type breakerFixture struct {
	primary  *countingPublisher
	fallback *countingPublisher
	breaker  *circuit.Breaker
	pub      *BreakerPublisher
	clock    time.Time
}

func newBreakerFixture() *breakerFixture {
	f := &breakerFixture{
		primary:  &countingPublisher{err: errors.New("broker unreachable")},
		fallback: &countingPublisher{},
		breaker:  circuit.New("findings", circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1)),
		clock:    time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC),
	}
	f.pub = NewBreakerPublisher(f.primary, f.fallback, f.breaker, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.pub.now = func() time.Time { return f.clock }
	return f
}

func TestBreakerPublisher(t *testing.T) {
	ctx := context.Background()
	n := finding.Notification{FindingID: "fnd_1", Event: finding.EventFindingCreated}

	t.Run("primary failures surface until the breaker opens", func(t *testing.T) {
		f := newBreakerFixture()

		require.Error(t, f.pub.Publish(ctx, n))
		assert.Equal(t, 0, f.fallback.calls)

		require.NoError(t, f.pub.Publish(ctx, n))
		assert.True(t, f.breaker.IsOpen())
		assert.Equal(t, 1, f.fallback.calls)
	})

	t.Run("open breaker skips primary during cooldown", func(t *testing.T) {
		f := newBreakerFixture()
		_ = f.pub.Publish(ctx, n)
		_ = f.pub.Publish(ctx, n)
		require.True(t, f.breaker.IsOpen())

		f.clock = f.clock.Add(30 * time.Second)
		require.NoError(t, f.pub.Publish(ctx, n))
		assert.Equal(t, 2, f.primary.calls)
		assert.Equal(t, 2, f.fallback.calls)
	})

	t.Run("successful retry after cooldown closes the breaker", func(t *testing.T) {
		f := newBreakerFixture()
		_ = f.pub.Publish(ctx, n)
		_ = f.pub.Publish(ctx, n)
		require.True(t, f.breaker.IsOpen())

		f.primary.err = nil
		f.clock = f.clock.Add(2 * time.Minute)
		require.NoError(t, f.pub.Publish(ctx, n))
		assert.Equal(t, 3, f.primary.calls)
		assert.False(t, f.breaker.IsOpen())
	})
}
