package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"comply/internal/task/models"
)

func boolPtr(b bool) *bool { return &b }

func evalPtr(e models.EvaluationStatus) *models.EvaluationStatus { return &e }

func run(status models.RunStatus, success *bool, eval *models.EvaluationStatus) *models.AutomationRun {
	return &models.AutomationRun{Status: status, Success: success, EvaluationStatus: eval, CreatedAt: now}
}

func passingRun() *models.AutomationRun {
	return run(models.RunStatusCompleted, boolPtr(true), evalPtr(models.EvaluationPass))
}

func TestIsSuccessfulAutomationRun(t *testing.T) {
	tests := []struct {
		name string
		run  *models.AutomationRun
		want bool
	}{
		{"missing run", nil, false},
		{"completed, successful, passing", passingRun(), true},
		{"completed, successful, no verdict", run(models.RunStatusCompleted, boolPtr(true), nil), true},
		{"completed, successful, failing verdict", run(models.RunStatusCompleted, boolPtr(true), evalPtr(models.EvaluationFail)), false},
		{"completed, unsuccessful", run(models.RunStatusCompleted, boolPtr(false), evalPtr(models.EvaluationPass)), false},
		{"completed, success unknown", run(models.RunStatusCompleted, nil, evalPtr(models.EvaluationPass)), false},
		{"still running", run(models.RunStatusRunning, boolPtr(true), evalPtr(models.EvaluationPass)), false},
		{"failed", run(models.RunStatusFailed, boolPtr(false), nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSuccessfulAutomationRun(tt.run))
		})
	}
}

func TestIsTaskStrictlyComplete(t *testing.T) {
	t.Run("done without enabled automations ignores disabled run history", func(t *testing.T) {
		task := models.Task{
			Status: models.TaskStatusDone,
			Automations: []models.Automation{
				{ID: "a1", IsEnabled: false, LatestRun: run(models.RunStatusFailed, boolPtr(false), evalPtr(models.EvaluationFail))},
				{ID: "a2", IsEnabled: false},
			},
		}
		assert.True(t, IsTaskEvidenceComplete(task))
		assert.True(t, IsTaskStrictlyComplete(task))
	})

	t.Run("done with a passing enabled automation", func(t *testing.T) {
		task := models.Task{
			Status:      models.TaskStatusDone,
			Automations: []models.Automation{{ID: "a1", IsEnabled: true, LatestRun: passingRun()}},
		}
		assert.True(t, IsTaskStrictlyComplete(task))

		task.Automations[0].LatestRun.Success = boolPtr(false)
		assert.False(t, IsTaskStrictlyComplete(task))
	})

	t.Run("enabled automation that never ran", func(t *testing.T) {
		task := models.Task{
			Status:      models.TaskStatusNotRelevant,
			Automations: []models.Automation{{ID: "a1", IsEnabled: true}},
		}
		assert.False(t, IsTaskEvidenceComplete(task))
		assert.False(t, IsTaskStrictlyComplete(task))
	})

	t.Run("not relevant counts as terminal", func(t *testing.T) {
		assert.True(t, IsTaskStrictlyComplete(models.Task{Status: models.TaskStatusNotRelevant}))
	})

	t.Run("open statuses are never complete", func(t *testing.T) {
		for _, st := range []models.TaskStatus{models.TaskStatusTodo, models.TaskStatusInProgress, models.TaskStatusInReview} {
			assert.False(t, IsTaskStrictlyComplete(models.Task{Status: st}), "status %q", st)
		}
	})
}

func TestCountAndIncomplete(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Status: models.TaskStatusDone},
		{ID: "t2", Status: models.TaskStatusTodo},
		{ID: "t3", Status: models.TaskStatusDone, Automations: []models.Automation{{IsEnabled: true}}},
		{ID: "t4", Status: models.TaskStatusNotRelevant},
	}

	assert.Equal(t, 2, CountStrictlyCompletedTasks(tasks))
	incomplete := IncompleteTasks(tasks)
	assert.Len(t, incomplete, len(tasks)-CountStrictlyCompletedTasks(tasks))
	assert.Equal(t, "t2", string(incomplete[0].ID))
	assert.Equal(t, "t3", string(incomplete[1].ID))
	assert.Equal(t, Progress{Done: 2, Total: 4}, TasksProgress(tasks))

	assert.Equal(t, 0, CountStrictlyCompletedTasks(nil))
	assert.Empty(t, IncompleteTasks(nil))
}
