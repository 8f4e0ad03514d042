package models

import (
	"time"

	id "comply/pkg/domain"
	dErrors "comply/pkg/domain-errors"
)

// TaskStatus is the explicit workflow status of a task.
type TaskStatus string

const (
	TaskStatusTodo        TaskStatus = "todo"
	TaskStatusInProgress  TaskStatus = "in_progress"
	TaskStatusInReview    TaskStatus = "in_review"
	TaskStatusDone        TaskStatus = "done"
	TaskStatusNotRelevant TaskStatus = "not_relevant"
)

var validTaskStatuses = map[TaskStatus]bool{
	TaskStatusTodo:        true,
	TaskStatusInProgress:  true,
	TaskStatusInReview:    true,
	TaskStatusDone:        true,
	TaskStatusNotRelevant: true,
}

// ParseTaskStatus constructs a TaskStatus from external input.
func ParseTaskStatus(s string) (TaskStatus, error) {
	st := TaskStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid task status")
	}
	return st, nil
}

func (s TaskStatus) IsValid() bool { return validTaskStatuses[s] }

// IsTerminal reports whether the status closes the task.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusDone || s == TaskStatusNotRelevant
}

// RunStatus is the lifecycle state of an automation run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// EvaluationStatus is the verdict of the check an automation performs.
type EvaluationStatus string

const (
	EvaluationPass EvaluationStatus = "pass"
	EvaluationFail EvaluationStatus = "fail"
)

// AutomationRun is one execution of an evidence automation.
type AutomationRun struct {
	ID        string    `json:"id" yaml:"id"`
	Status    RunStatus `json:"status" yaml:"status"`
	Success   *bool     `json:"success,omitempty" yaml:"success,omitempty"`
	// EvaluationStatus is nil when the automation produced no verdict.
	EvaluationStatus *EvaluationStatus `json:"evaluation_status,omitempty" yaml:"evaluation_status,omitempty"`
	CreatedAt        time.Time         `json:"created_at" yaml:"created_at"`
}

// Automation collects evidence for a task. Only the most recent run is
// loaded.
type Automation struct {
	ID        id.AutomationID `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	IsEnabled bool            `json:"is_enabled" yaml:"is_enabled"`
	LatestRun *AutomationRun  `json:"latest_run,omitempty" yaml:"latest_run,omitempty"`
}

// Task is an organization-scoped unit of compliance work.
type Task struct {
	ID             id.TaskID         `json:"id" yaml:"id"`
	OrganizationID id.OrganizationID `json:"organization_id" yaml:"organization_id"`
	Title          string            `json:"title" yaml:"title"`
	Status         TaskStatus        `json:"status" yaml:"status"`
	Automations    []Automation      `json:"automations,omitempty" yaml:"automations,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at" yaml:"updated_at"`
}
