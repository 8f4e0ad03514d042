package finding

import (
	"comply/internal/evidence/forms"
	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
)

// TargetKind names the variant of a Target.
type TargetKind string

const (
	TargetKindTask       TargetKind = "task"
	TargetKindSubmission TargetKind = "submission"
	TargetKindFormType   TargetKind = "form_type"
)

// Target is what a finding is raised against: exactly one of TaskTarget,
// SubmissionTarget or FormTypeTarget.
type Target interface {
	Kind() TargetKind
	isTarget()
}

// TaskTarget points a finding at a task.
type TaskTarget struct {
	TaskID id.TaskID
}

// SubmissionTarget points a finding at one evidence submission.
type SubmissionTarget struct {
	SubmissionID id.SubmissionID
	FormType     forms.FormType
}

// FormTypeTarget points a finding at a document as a whole.
type FormTypeTarget struct {
	FormType forms.FormType
}

func (TaskTarget) Kind() TargetKind       { return TargetKindTask }
func (SubmissionTarget) Kind() TargetKind { return TargetKindSubmission }
func (FormTypeTarget) Kind() TargetKind   { return TargetKindFormType }

func (TaskTarget) isTarget()       {}
func (SubmissionTarget) isTarget() {}
func (FormTypeTarget) isTarget()   {}

// TargetRecord is the nullable-column form of a Target used by storage.
// For a submission target FormType holds the submission's form type.
type TargetRecord struct {
	TaskID       *id.TaskID
	SubmissionID *id.SubmissionID
	FormType     *forms.PersistedFormType
}

// ToRecord flattens a target into its storage columns.
func ToRecord(t Target) TargetRecord {
	switch v := t.(type) {
	case TaskTarget:
		taskID := v.TaskID
		return TargetRecord{TaskID: &taskID}
	case SubmissionTarget:
		subID := v.SubmissionID
		p := forms.ToPersisted(v.FormType)
		return TargetRecord{SubmissionID: &subID, FormType: &p}
	case FormTypeTarget:
		p := forms.ToPersisted(v.FormType)
		return TargetRecord{FormType: &p}
	default:
		return TargetRecord{}
	}
}

// TargetFromRecord rebuilds a target from storage columns, rejecting rows
// that reference more than one kind of target or none at all.
func TargetFromRecord(r TargetRecord) (Target, error) {
	switch {
	case r.TaskID != nil:
		if r.SubmissionID != nil || r.FormType != nil {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "finding references a task and a document")
		}
		return TaskTarget{TaskID: *r.TaskID}, nil
	case r.SubmissionID != nil:
		ft := forms.ToExternal(r.FormType)
		if ft == nil {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "submission finding has no known form type")
		}
		return SubmissionTarget{SubmissionID: *r.SubmissionID, FormType: *ft}, nil
	case r.FormType != nil:
		ft := forms.ToExternal(r.FormType)
		if ft == nil {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "finding references an unknown form type")
		}
		return FormTypeTarget{FormType: *ft}, nil
	default:
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "finding has no target")
	}
}

// ValidateTarget checks that a target built from external input is complete.
func ValidateTarget(t Target) error {
	switch v := t.(type) {
	case TaskTarget:
		if _, err := id.ParseTaskID(v.TaskID.String()); err != nil {
			return err
		}
	case SubmissionTarget:
		if _, err := id.ParseSubmissionID(v.SubmissionID.String()); err != nil {
			return err
		}
		if !v.FormType.IsValid() {
			return dErrors.New(dErrors.CodeInvalidInput, "unknown form type")
		}
	case FormTypeTarget:
		if !v.FormType.IsValid() {
			return dErrors.New(dErrors.CodeInvalidInput, "unknown form type")
		}
	default:
		return dErrors.New(dErrors.CodeInvalidInput, "finding target is required")
	}
	return nil
}
