package compliance

import (
	"time"

	"comply/internal/task/models"
)

// TaskSummary is a task that still blocks the tasks category.
type TaskSummary struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Status           string `json:"status"`
	EvidenceComplete bool   `json:"evidence_complete"`
}

// Overview is the organization's compliance dashboard.
type Overview struct {
	OrganizationID       string           `json:"organization_id"`
	Score                int              `json:"score"`
	Categories           []CategoryScore  `json:"categories"`
	IncompleteTasks      []TaskSummary    `json:"incomplete_tasks"`
	OutstandingDocuments []DocumentStatus `json:"outstanding_documents"`
	ComputedAt           time.Time        `json:"computed_at"`
}

// BuildOverview assembles the dashboard from already gathered inputs.
func BuildOverview(orgID string, policies Progress, tasks []models.Task, documents DocumentsProgress, people Progress, now time.Time) Overview {
	card := BuildScorecard(orgID, policies, TasksProgress(tasks), Progress{
		Done:  documents.Completed,
		Total: documents.Total,
	}, people)

	incomplete := IncompleteTasks(tasks)
	summaries := make([]TaskSummary, 0, len(incomplete))
	for _, t := range incomplete {
		summaries = append(summaries, TaskSummary{
			ID:               t.ID.String(),
			Title:            t.Title,
			Status:           string(t.Status),
			EvidenceComplete: IsTaskEvidenceComplete(t),
		})
	}

	outstanding := make([]DocumentStatus, 0, documents.Outstanding)
	for _, item := range documents.Items {
		if item.Outstanding {
			outstanding = append(outstanding, item)
		}
	}

	return Overview{
		OrganizationID:       orgID,
		Score:                card.Score,
		Categories:           card.Categories,
		IncompleteTasks:      summaries,
		OutstandingDocuments: outstanding,
		ComputedAt:           now,
	}
}
