package handler

import (
	"strings"

	"comply/internal/evidence/forms"
	"comply/internal/submission/models"
	dErrors "comply/pkg/domain-errors"
)

const maxReasonLength = 1000

// SubmitRequest is the body of POST .../submissions and .../validate.
type SubmitRequest struct {
	Subtype string         `json:"subtype,omitempty"`
	Data    map[string]any `json:"data"`

	parsedSubtype *forms.FormType
}

// Validate parses the optional meeting subtype. Payload fields are checked
// by the service.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Subtype = strings.TrimSpace(r.Subtype)
	if r.Subtype != "" {
		subtype, err := forms.ParseFormType(r.Subtype)
		if err != nil {
			return dErrors.New(dErrors.CodeInvalidInput, "subtype is not a known form type")
		}
		r.parsedSubtype = &subtype
	}
	if r.Data == nil {
		r.Data = map[string]any{}
	}
	return nil
}

func (r *SubmitRequest) ParsedSubtype() *forms.FormType {
	return r.parsedSubtype
}

// ReviewRequest is the body of POST .../review.
type ReviewRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`

	parsedAction models.ReviewAction
}

func (r *ReviewRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Reason) > maxReasonLength {
		return dErrors.New(dErrors.CodeValidation, "reason must be at most 1000 characters")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	action, err := models.ParseReviewAction(strings.TrimSpace(r.Action))
	if err != nil {
		return err
	}
	r.parsedAction = action
	return nil
}

func (r *ReviewRequest) ParsedAction() models.ReviewAction {
	return r.parsedAction
}
