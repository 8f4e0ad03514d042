package handler

import (
	"time"

	"comply/internal/finding"
)

// TargetResponse mirrors TargetRequest; form types are external identifiers.
type TargetResponse struct {
	Kind         string `json:"kind"`
	TaskID       string `json:"task_id,omitempty"`
	SubmissionID string `json:"submission_id,omitempty"`
	FormType     string `json:"form_type,omitempty"`
}

type FindingResponse struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organization_id"`
	Type           string         `json:"type"`
	Status         string         `json:"status"`
	Content        string         `json:"content"`
	Target         TargetResponse `json:"target"`
	URL            string         `json:"url"`
	CreatedBy      string         `json:"created_by"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type FindingListResponse struct {
	Findings []FindingResponse `json:"findings"`
}

func toTargetResponse(t finding.Target) TargetResponse {
	switch v := t.(type) {
	case finding.TaskTarget:
		return TargetResponse{Kind: string(v.Kind()), TaskID: v.TaskID.String()}
	case finding.SubmissionTarget:
		return TargetResponse{Kind: string(v.Kind()), SubmissionID: v.SubmissionID.String(), FormType: v.FormType.String()}
	case finding.FormTypeTarget:
		return TargetResponse{Kind: string(v.Kind()), FormType: v.FormType.String()}
	default:
		return TargetResponse{}
	}
}

func toFindingResponse(f *finding.Finding, url string) FindingResponse {
	return FindingResponse{
		ID:             f.ID.String(),
		OrganizationID: f.OrganizationID.String(),
		Type:           string(f.Type),
		Status:         string(f.Status),
		Content:        f.Content,
		Target:         toTargetResponse(f.Target),
		URL:            url,
		CreatedBy:      f.CreatedBy.String(),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}
