// Package requesttime gives every operation within one HTTP request the same
// "now", so freshness checks and stored timestamps agree.
package requesttime

import (
	"net/http"
	"time"

	"comply/pkg/requestcontext"
)

// Middleware stamps each request with the wall clock in UTC.
var Middleware = WithClock(time.Now)

// WithClock stamps each request with clock(), truncated to microseconds so
// the value survives a Postgres timestamptz round trip unchanged.
func WithClock(clock func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := clock().UTC().Truncate(time.Microsecond)
			next.ServeHTTP(w, r.WithContext(requestcontext.WithTime(r.Context(), now)))
		})
	}
}
