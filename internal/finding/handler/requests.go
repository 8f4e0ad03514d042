package handler

import (
	"strings"

	"comply/internal/evidence/forms"
	"comply/internal/finding"
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
)

// TargetRequest names what a finding is raised against. Kind selects which
// of the other fields are read.
type TargetRequest struct {
	Kind         string `json:"kind"`
	TaskID       string `json:"task_id,omitempty"`
	SubmissionID string `json:"submission_id,omitempty"`
	FormType     string `json:"form_type,omitempty"`
}

// CreateRequest is the body of POST /findings.
type CreateRequest struct {
	Type    string        `json:"type"`
	Content string        `json:"content"`
	Target  TargetRequest `json:"target"`

	parsedType   finding.Type
	parsedTarget finding.Target
}

func (r *CreateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return dErrors.New(dErrors.CodeValidation, "content is required")
	}
	t, err := finding.ParseType(strings.TrimSpace(r.Type))
	if err != nil {
		return err
	}
	target, err := r.Target.parse()
	if err != nil {
		return err
	}
	r.parsedType = t
	r.parsedTarget = target
	return nil
}

func (r *CreateRequest) ParsedType() finding.Type {
	return r.parsedType
}

func (r *CreateRequest) ParsedTarget() finding.Target {
	return r.parsedTarget
}

func (t TargetRequest) parse() (finding.Target, error) {
	kind, err := finding.ParseTargetKind(strings.TrimSpace(t.Kind))
	if err != nil {
		return nil, err
	}
	switch kind {
	case finding.TargetKindTask:
		taskID, err := id.ParseTaskID(t.TaskID)
		if err != nil {
			return nil, err
		}
		return finding.TaskTarget{TaskID: taskID}, nil
	case finding.TargetKindSubmission:
		subID, err := id.ParseSubmissionID(t.SubmissionID)
		if err != nil {
			return nil, err
		}
		ft, err := forms.ParseFormType(t.FormType)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "target form_type is not a known form type")
		}
		return finding.SubmissionTarget{SubmissionID: subID, FormType: ft}, nil
	default:
		ft, err := forms.ParseFormType(t.FormType)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "target form_type is not a known form type")
		}
		return finding.FormTypeTarget{FormType: ft}, nil
	}
}

// UpdateStatusRequest is the body of PATCH /findings/{findingID}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`

	parsedStatus finding.Status
}

func (r *UpdateStatusRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	st, err := finding.ParseStatus(strings.TrimSpace(r.Status))
	if err != nil {
		return err
	}
	r.parsedStatus = st
	return nil
}

func (r *UpdateStatusRequest) ParsedStatus() finding.Status {
	return r.parsedStatus
}
