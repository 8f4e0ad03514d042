package compliance

import "comply/internal/task/models"

// IsSuccessfulAutomationRun reports whether run is a completed, successful
// run whose evaluation did not fail. A missing run is a failure.
func IsSuccessfulAutomationRun(run *models.AutomationRun) bool {
	if run == nil {
		return false
	}
	if run.Status != models.RunStatusCompleted {
		return false
	}
	if run.Success == nil || !*run.Success {
		return false
	}
	return run.EvaluationStatus == nil || *run.EvaluationStatus != models.EvaluationFail
}

// IsTaskEvidenceComplete reports whether every enabled automation of the task
// last ran successfully. Disabled automations are ignored, so a task without
// enabled automations is complete.
func IsTaskEvidenceComplete(task models.Task) bool {
	for _, a := range task.Automations {
		if !a.IsEnabled {
			continue
		}
		if !IsSuccessfulAutomationRun(a.LatestRun) {
			return false
		}
	}
	return true
}

// IsTaskStrictlyComplete reports whether the task is done or not relevant and
// its evidence is complete.
func IsTaskStrictlyComplete(task models.Task) bool {
	return task.Status.IsTerminal() && IsTaskEvidenceComplete(task)
}

// CountStrictlyCompletedTasks counts the strictly complete tasks.
func CountStrictlyCompletedTasks(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if IsTaskStrictlyComplete(t) {
			n++
		}
	}
	return n
}

// IncompleteTasks returns the tasks that are not strictly complete, in input
// order.
func IncompleteTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !IsTaskStrictlyComplete(t) {
			out = append(out, t)
		}
	}
	return out
}

// TasksProgress returns done/total for a task list.
func TasksProgress(tasks []models.Task) Progress {
	return Progress{Done: CountStrictlyCompletedTasks(tasks), Total: len(tasks)}
}
