// Package forms is the static catalog of evidence form types: their
// definitions, field layouts and the mapping between the external hyphenated
// identifiers and the values persisted in storage.
package forms

import (
	"time"

	dErrors "comply/pkg/domain-errors"
)

// FormType is the external identifier of an evidence form, as it appears in
// URLs and API payloads.
type FormType string

const (
	FormTypeMeeting                       FormType = "meeting"
	FormTypeBoardMeeting                  FormType = "board-meeting"
	FormTypeITLeadershipMeeting           FormType = "it-leadership-meeting"
	FormTypeRiskCommitteeMeeting          FormType = "risk-committee-meeting"
	FormTypeAccessRequest                 FormType = "access-request"
	FormTypeWhistleblowerReport           FormType = "whistleblower-report"
	FormTypePenetrationTest               FormType = "penetration-test"
	FormTypeRBACMatrix                    FormType = "rbac-matrix"
	FormTypeInfrastructureInventory       FormType = "infrastructure-inventory"
	FormTypeEmployeePerformanceEvaluation FormType = "employee-performance-evaluation"
	FormTypeNetworkDiagram                FormType = "network-diagram"
	FormTypeTabletopExercise              FormType = "tabletop-exercise"
)

// allFormTypes lists the closed domain in catalog order.
var allFormTypes = []FormType{
	FormTypeMeeting,
	FormTypeBoardMeeting,
	FormTypeITLeadershipMeeting,
	FormTypeRiskCommitteeMeeting,
	FormTypeAccessRequest,
	FormTypeWhistleblowerReport,
	FormTypePenetrationTest,
	FormTypeRBACMatrix,
	FormTypeInfrastructureInventory,
	FormTypeEmployeePerformanceEvaluation,
	FormTypeNetworkDiagram,
	FormTypeTabletopExercise,
}

var meetingSubtypes = []FormType{
	FormTypeBoardMeeting,
	FormTypeITLeadershipMeeting,
	FormTypeRiskCommitteeMeeting,
}

// All returns every form type in catalog order.
func All() []FormType {
	return append([]FormType(nil), allFormTypes...)
}

// MeetingSubtypes returns the form types stored for the meeting document.
func MeetingSubtypes() []FormType {
	return append([]FormType(nil), meetingSubtypes...)
}

// ParseFormType constructs a FormType from external input. Unknown values are
// reported as not found since they usually arrive as a URL path segment.
func ParseFormType(s string) (FormType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "form type cannot be empty")
	}
	ft := FormType(s)
	if !ft.IsValid() {
		return "", dErrors.New(dErrors.CodeNotFound, "unknown form type")
	}
	return ft, nil
}

// IsValid reports whether the form type belongs to the catalog.
func (t FormType) IsValid() bool {
	_, ok := toPersisted[t]
	return ok
}

// IsMeetingSubtype reports whether t is one of the stored meeting kinds.
func (t FormType) IsMeetingSubtype() bool {
	for _, st := range meetingSubtypes {
		if st == t {
			return true
		}
	}
	return false
}

func (t FormType) String() string { return string(t) }

// SubmissionDateMode controls who sets a submission's submissionDate.
type SubmissionDateMode string

const (
	// SubmissionDateAuto stamps submissionDate with the request time.
	SubmissionDateAuto SubmissionDateMode = "auto"
	// SubmissionDateCustom lets the submitter pick the date.
	SubmissionDateCustom SubmissionDateMode = "custom"
)

// FieldKind is the closed set of field variants a form can render.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldDate     FieldKind = "date"
	FieldSelect   FieldKind = "select"
	FieldTextarea FieldKind = "textarea"
	FieldFile     FieldKind = "file"
	FieldMatrix   FieldKind = "matrix"
)

// Option is one choice of a select field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Column is one column of a matrix field.
type Column struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Field describes one input of a form.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Required    bool      `json:"required"`
	Description string    `json:"description,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Columns     []Column  `json:"columns,omitempty"`
	// MinRows applies to matrix fields.
	MinRows int    `json:"min_rows,omitempty"`
	Accept  string `json:"accept,omitempty"`
}

// Definition is the immutable metadata of one form type.
type Definition struct {
	Type               FormType           `json:"type"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Category           string             `json:"category"`
	SubmissionDateMode SubmissionDateMode `json:"submission_date_mode"`
	// Hidden forms are not listed on their own and do not count towards
	// document completeness.
	Hidden bool `json:"hidden"`
	// Optional forms are event driven and do not count towards document
	// completeness.
	Optional bool `json:"optional"`
	// StalenessWindow overrides the default freshness window when non-zero.
	StalenessWindow time.Duration `json:"staleness_window,omitempty"`
	Fields          []Field       `json:"fields"`
}

// CountsTowardsCompleteness reports whether the form is part of the document
// completeness denominator.
func (d Definition) CountsTowardsCompleteness() bool {
	return !d.Hidden && !d.Optional
}

// Field returns the field with the given key.
func (d Definition) Field(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
