package store

import (
	"context"
	"database/sql"
	"fmt"

	"comply/internal/task/models"
	id "comply/pkg/domain"
	txcontext "comply/pkg/platform/tx"
)

// PostgresStore reads tasks with their automations and the latest run of
// each automation.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) queryer(ctx context.Context) queryer {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// ListByOrganization loads every task of the organization. The LATERAL join
// keeps only the newest run per automation.
func (s *PostgresStore) ListByOrganization(ctx context.Context, orgID id.OrganizationID) ([]*models.Task, error) {
	query := `
		SELECT t.id, t.organization_id, t.title, t.status, t.updated_at,
		       a.id, a.name, a.is_enabled,
		       r.id, r.status, r.success, r.evaluation_status, r.created_at
		FROM tasks t
		LEFT JOIN evidence_automations a ON a.task_id = t.id
		LEFT JOIN LATERAL (
			SELECT id, status, success, evaluation_status, created_at
			FROM evidence_automation_runs
			WHERE automation_id = a.id
			ORDER BY created_at DESC
			LIMIT 1
		) r ON true
		WHERE t.organization_id = $1
		ORDER BY t.id, a.id
	`
	rows, err := s.queryer(ctx).QueryContext(ctx, query, orgID.String())
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var (
		out  []*models.Task
		last *models.Task
	)
	for rows.Next() {
		var (
			task         models.Task
			taskID       string
			taskOrg      string
			status       string
			automationID sql.NullString
			name         sql.NullString
			enabled      sql.NullBool
			runID        sql.NullString
			runStatus    sql.NullString
			success      sql.NullBool
			evaluation   sql.NullString
			runAt        sql.NullTime
		)
		if err := rows.Scan(&taskID, &taskOrg, &task.Title, &status, &task.UpdatedAt,
			&automationID, &name, &enabled,
			&runID, &runStatus, &success, &evaluation, &runAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}

		if last == nil || last.ID != id.TaskID(taskID) {
			task.ID = id.TaskID(taskID)
			task.OrganizationID = id.OrganizationID(taskOrg)
			task.Status = models.TaskStatus(status)
			last = &task
			out = append(out, last)
		}
		if !automationID.Valid {
			continue
		}

		automation := models.Automation{
			ID:        id.AutomationID(automationID.String),
			Name:      name.String,
			IsEnabled: enabled.Bool,
		}
		if runID.Valid {
			run := &models.AutomationRun{
				ID:        runID.String,
				Status:    models.RunStatus(runStatus.String),
				CreatedAt: runAt.Time,
			}
			if success.Valid {
				v := success.Bool
				run.Success = &v
			}
			if evaluation.Valid {
				v := models.EvaluationStatus(evaluation.String)
				run.EvaluationStatus = &v
			}
			automation.LatestRun = run
		}
		last.Automations = append(last.Automations, automation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}
