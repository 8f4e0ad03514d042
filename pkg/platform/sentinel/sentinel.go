// Package sentinel holds the infrastructure facts stores report. Services
// translate them into domain errors; handlers never see them directly.
package sentinel

import "errors"

var (
	// ErrNotFound: the row or key does not exist for the caller's organization.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a uniqueness constraint rejected the write.
	ErrConflict = errors.New("conflict")
	// ErrInvalidState: a guarded update found the entity in another state,
	// e.g. reviewing a submission that is no longer pending.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnavailable: a backing service (Redis, Kafka) could not be reached.
	ErrUnavailable = errors.New("unavailable")
)
