package domain

import (
	"github.com/google/uuid"

	dErrors "comply/pkg/domain-errors"
)

// Typed identifiers. Ids end up in URL paths and notification payloads, so
// they are restricted to [A-Za-z0-9_-] and construction from external input
// goes through the Parse functions.
type (
	OrganizationID string
	UserID         string
	SubmissionID   string
	TaskID         string
	AutomationID   string
	FindingID      string
)

const maxIDLength = 128

// Prefixes for generated ids.
const (
	submissionPrefix = "sub_"
	findingPrefix    = "fnd_"
)

func parseID(kind, s string) (string, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be empty")
	}
	if len(s) > maxIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, kind+" is too long")
	}
	for i := 0; i < len(s); i++ {
		if !isIDByte(s[i]) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
		}
	}
	return s, nil
}

func isIDByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

// ParseOrganizationID validates an organization id from external input.
func ParseOrganizationID(s string) (OrganizationID, error) {
	v, err := parseID("organization id", s)
	return OrganizationID(v), err
}

// ParseUserID validates a user id from external input.
func ParseUserID(s string) (UserID, error) {
	v, err := parseID("user id", s)
	return UserID(v), err
}

// ParseSubmissionID validates a submission id from external input.
func ParseSubmissionID(s string) (SubmissionID, error) {
	v, err := parseID("submission id", s)
	return SubmissionID(v), err
}

// ParseTaskID validates a task id from external input.
func ParseTaskID(s string) (TaskID, error) {
	v, err := parseID("task id", s)
	return TaskID(v), err
}

// ParseFindingID validates a finding id from external input.
func ParseFindingID(s string) (FindingID, error) {
	v, err := parseID("finding id", s)
	return FindingID(v), err
}

// NewSubmissionID generates a fresh submission id.
func NewSubmissionID() SubmissionID {
	return SubmissionID(submissionPrefix + uuid.NewString())
}

// NewFindingID generates a fresh finding id.
func NewFindingID() FindingID {
	return FindingID(findingPrefix + uuid.NewString())
}

func (id OrganizationID) String() string { return string(id) }
func (id UserID) String() string         { return string(id) }
func (id SubmissionID) String() string   { return string(id) }
func (id TaskID) String() string         { return string(id) }
func (id AutomationID) String() string   { return string(id) }
func (id FindingID) String() string      { return string(id) }

func (id OrganizationID) IsNil() bool { return id == "" }
func (id UserID) IsNil() bool         { return id == "" }
