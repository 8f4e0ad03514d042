package finding

import (
	"time"

	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
)

// Status is the review state of a finding.
type Status string

const (
	StatusOpen           Status = "open"
	StatusReadyForReview Status = "ready_for_review"
	StatusNeedsRevision  Status = "needs_revision"
	StatusClosed         Status = "closed"
)

// transitions lists the statuses reachable from each status. Findings move
// back and forth between review states; a closed finding can only reopen.
var transitions = map[Status][]Status{
	StatusOpen:           {StatusReadyForReview, StatusNeedsRevision, StatusClosed},
	StatusReadyForReview: {StatusNeedsRevision, StatusClosed, StatusOpen},
	StatusNeedsRevision:  {StatusReadyForReview, StatusClosed, StatusOpen},
	StatusClosed:         {StatusOpen},
}

// ParseStatus constructs a Status from external input.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid finding status")
	}
	return st, nil
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether a finding in s may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Type is the audit framework a finding was raised under.
type Type string

const (
	TypeSOC2     Type = "soc2"
	TypeISO27001 Type = "iso27001"
)

// ParseType constructs a Type from external input.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeSOC2, TypeISO27001:
		return t, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid finding type")
	}
}

// Finding is an auditor observation raised against exactly one target.
type Finding struct {
	ID             id.FindingID
	OrganizationID id.OrganizationID
	Type           Type
	Status         Status
	Content        string
	Target         Target
	CreatedBy      id.UserID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Transition moves the finding to next, enforcing the transition table.
func (f *Finding) Transition(next Status, now time.Time) error {
	if !next.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid finding status")
	}
	if !f.Status.CanTransitionTo(next) {
		return dErrors.New(dErrors.CodeConflict, "finding cannot move from "+string(f.Status)+" to "+string(next))
	}
	f.Status = next
	f.UpdatedAt = now
	return nil
}

// ListFilter narrows a finding listing. Zero values match everything.
type ListFilter struct {
	Status     Status
	TargetKind TargetKind
}

// Matches reports whether f passes the filter.
func (lf ListFilter) Matches(f *Finding) bool {
	if lf.Status != "" && f.Status != lf.Status {
		return false
	}
	if lf.TargetKind != "" && (f.Target == nil || f.Target.Kind() != lf.TargetKind) {
		return false
	}
	return true
}

// ParseTargetKind constructs a TargetKind from external input.
func ParseTargetKind(s string) (TargetKind, error) {
	switch k := TargetKind(s); k {
	case TargetKindTask, TargetKindSubmission, TargetKindFormType:
		return k, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid target kind")
	}
}
