package handler

import (
	"time"

	"comply/internal/evidence/validation"
	"comply/internal/submission/models"
)

// SubmissionResponse is the JSON shape of one submission.
type SubmissionResponse struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organization_id"`
	FormType       string         `json:"form_type"`
	Status         string         `json:"status"`
	Data           map[string]any `json:"data"`
	SubmittedAt    time.Time      `json:"submitted_at"`
	SubmittedBy    string         `json:"submitted_by"`
	ReviewedBy     *string        `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time     `json:"reviewed_at,omitempty"`
	ReviewReason   string         `json:"review_reason,omitempty"`
}

type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}

// ValidateResponse is returned by the dry-run endpoint for valid payloads.
type ValidateResponse struct {
	Valid bool           `json:"valid"`
	Data  map[string]any `json:"data"`
}

// ValidationErrorResponse is written with 422 when a payload fails its
// schema.
type ValidationErrorResponse struct {
	Error            string                  `json:"error"`
	ErrorDescription string                  `json:"error_description"`
	Fields           []validation.FieldError `json:"fields"`
}

func toSubmissionResponse(sub *models.Submission) SubmissionResponse {
	resp := SubmissionResponse{
		ID:             sub.ID.String(),
		OrganizationID: sub.OrganizationID.String(),
		FormType:       sub.FormType.String(),
		Status:         string(sub.Status),
		Data:           sub.Data,
		SubmittedAt:    sub.SubmittedAt,
		SubmittedBy:    sub.SubmittedBy.String(),
		ReviewedAt:     sub.ReviewedAt,
		ReviewReason:   sub.ReviewReason,
	}
	if sub.ReviewedBy != nil {
		reviewer := sub.ReviewedBy.String()
		resp.ReviewedBy = &reviewer
	}
	return resp
}

func toSubmissionList(subs []*models.Submission) SubmissionListResponse {
	out := SubmissionListResponse{Submissions: make([]SubmissionResponse, 0, len(subs))}
	for _, sub := range subs {
		out.Submissions = append(out.Submissions, toSubmissionResponse(sub))
	}
	return out
}
