package compliance

import (
	"time"

	"comply/internal/evidence/forms"
)

// DefaultStalenessWindow is six 30-day months. It is a fixed duration, not
// calendar-month arithmetic.
const DefaultStalenessWindow = 6 * 30 * 24 * time.Hour

// IsOutstanding reports whether a document last submitted at
// lastSubmittedAt needs a new submission. Never submitted is outstanding; a
// submission exactly window old is still fresh.
func IsOutstanding(lastSubmittedAt *time.Time, now time.Time, window time.Duration) bool {
	if lastSubmittedAt == nil {
		return true
	}
	return now.Sub(*lastSubmittedAt) > window
}

// WindowFor returns the staleness window of a form, falling back to
// fallback when the form does not override it.
func WindowFor(def forms.Definition, fallback time.Duration) time.Duration {
	if def.StalenessWindow > 0 {
		return def.StalenessWindow
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultStalenessWindow
}
