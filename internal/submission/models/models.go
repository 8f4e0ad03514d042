package models

import (
	"time"

	"comply/internal/evidence/forms"
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
)

// Status is the review state of a submission.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ReviewAction is the decision a reviewer takes on a pending submission.
type ReviewAction string

const (
	ReviewApprove ReviewAction = "approved"
	ReviewReject  ReviewAction = "rejected"
)

// ParseReviewAction constructs a ReviewAction from external input.
func ParseReviewAction(s string) (ReviewAction, error) {
	switch a := ReviewAction(s); a {
	case ReviewApprove, ReviewReject:
		return a, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "action must be approved or rejected")
	}
}

// ResultingStatus is the status a submission ends in after the action.
func (a ReviewAction) ResultingStatus() Status {
	if a == ReviewApprove {
		return StatusApproved
	}
	return StatusRejected
}

// Submission is one evidence submission. FormType is the form the data was
// stored under; meeting submissions carry their subtype.
type Submission struct {
	ID             id.SubmissionID
	OrganizationID id.OrganizationID
	FormType       forms.FormType
	Data           map[string]any
	Status         Status
	SubmittedAt    time.Time
	SubmittedBy    id.UserID
	ReviewedBy     *id.UserID
	ReviewedAt     *time.Time
	ReviewReason   string
}

// IsPending reports whether the submission still awaits review.
func (s *Submission) IsPending() bool {
	return s.Status == StatusPending
}

// MatchesFormType reports whether the submission belongs to the document at
// ft. Meeting subtypes also belong to the meeting document.
func (s *Submission) MatchesFormType(ft forms.FormType) bool {
	if s.FormType == ft {
		return true
	}
	return ft == forms.FormTypeMeeting && s.FormType.IsMeetingSubtype()
}

// Review records the reviewer's decision. Only pending submissions can be
// reviewed.
func (s *Submission) Review(action ReviewAction, reviewer id.UserID, reason string, now time.Time) error {
	if !s.IsPending() {
		return dErrors.New(dErrors.CodeConflict, "submission has already been reviewed")
	}
	s.Status = action.ResultingStatus()
	s.ReviewedBy = &reviewer
	s.ReviewedAt = &now
	s.ReviewReason = reason
	return nil
}

// StoredFormTypes returns the form types whose submissions make up the
// document at ft.
func StoredFormTypes(ft forms.FormType) []forms.FormType {
	if ft == forms.FormTypeMeeting {
		return forms.MeetingSubtypes()
	}
	return []forms.FormType{ft}
}
