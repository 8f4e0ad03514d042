package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"

	"comply/internal/evidence/forms"
	"comply/internal/finding"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
	txcontext "comply/pkg/platform/tx"
)

const uniqueViolation = "23505"

// PostgresStore persists findings in the findings table. The target is
// flattened into the nullable task_id, submission_id and form_type columns;
// a check constraint keeps at most one of task_id and form_type set.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const findingColumns = `id, organization_id, type, status, content,
	task_id, submission_id, form_type, created_by, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, f *finding.Finding) error {
	rec := finding.ToRecord(f.Target)
	query := `
		INSERT INTO findings (
			id, organization_id, type, status, content,
			task_id, submission_id, form_type, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		f.ID.String(),
		f.OrganizationID.String(),
		string(f.Type),
		string(f.Status),
		f.Content,
		nullable(rec.TaskID),
		nullable(rec.SubmissionID),
		nullable(rec.FormType),
		f.CreatedBy.String(),
		f.CreatedAt,
		f.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert finding: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, orgID id.OrganizationID, findingID id.FindingID) (*finding.Finding, error) {
	query := `SELECT ` + findingColumns + `
		FROM findings
		WHERE id = $1 AND organization_id = $2`
	f, err := scanFinding(s.execer(ctx).QueryRowContext(ctx, query, findingID.String(), orgID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find finding: %w", err)
	}
	return f, nil
}

// List returns the organization's findings, newest first.
func (s *PostgresStore) List(ctx context.Context, orgID id.OrganizationID, filter finding.ListFilter) ([]*finding.Finding, error) {
	query := `SELECT ` + findingColumns + ` FROM findings WHERE organization_id = $1`
	args := []any{orgID.String()}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	switch filter.TargetKind {
	case finding.TargetKindTask:
		query += ` AND task_id IS NOT NULL`
	case finding.TargetKindSubmission:
		query += ` AND submission_id IS NOT NULL`
	case finding.TargetKindFormType:
		query += ` AND task_id IS NULL AND submission_id IS NULL AND form_type IS NOT NULL`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list findings: %w", err)
	}
	defer rows.Close()

	out := make([]*finding.Finding, 0)
	for rows.Next() {
		f, err := scanFinding(rows)
		if err != nil {
			return nil, fmt.Errorf("scan finding: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate findings: %w", err)
	}
	return out, nil
}

// UpdateStatus is a compare-and-set on the status column.
func (s *PostgresStore) UpdateStatus(ctx context.Context, f *finding.Finding, expected finding.Status) error {
	query := `
		UPDATE findings
		SET status = $1, updated_at = $2
		WHERE id = $3 AND organization_id = $4 AND status = $5
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		string(f.Status),
		f.UpdatedAt,
		f.ID.String(),
		f.OrganizationID.String(),
		string(expected),
	)
	if err != nil {
		return fmt.Errorf("update finding status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update finding status: %w", err)
	}
	if n == 1 {
		return nil
	}

	var exists bool
	err = s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM findings WHERE id = $1 AND organization_id = $2)`,
		f.ID.String(), f.OrganizationID.String(),
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check finding: %w", err)
	}
	if !exists {
		return sentinel.ErrNotFound
	}
	return sentinel.ErrInvalidState
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFinding(row rowScanner) (*finding.Finding, error) {
	var (
		f            finding.Finding
		findingID    string
		orgID        string
		findingType  string
		status       string
		taskID       sql.NullString
		submissionID sql.NullString
		formType     sql.NullString
		createdBy    string
	)
	if err := row.Scan(&findingID, &orgID, &findingType, &status, &f.Content,
		&taskID, &submissionID, &formType, &createdBy, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}

	var rec finding.TargetRecord
	if taskID.Valid {
		v := id.TaskID(taskID.String)
		rec.TaskID = &v
	}
	if submissionID.Valid {
		v := id.SubmissionID(submissionID.String)
		rec.SubmissionID = &v
	}
	if formType.Valid {
		v := forms.PersistedFormType(formType.String)
		rec.FormType = &v
	}
	target, err := finding.TargetFromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("finding %s: %w", findingID, err)
	}

	f.ID = id.FindingID(findingID)
	f.OrganizationID = id.OrganizationID(orgID)
	f.Type = finding.Type(findingType)
	f.Status = finding.Status(status)
	f.Target = target
	f.CreatedBy = id.UserID(createdBy)
	return &f, nil
}

type stringer interface {
	String() string
}

func nullable[T stringer](v *T) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: (*v).String(), Valid: true}
}
