package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"comply/internal/compliance"
	"comply/internal/evidence/forms"
	"comply/internal/submission/models"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
	txcontext "comply/pkg/platform/tx"
)

const uniqueViolation = "23505"

// PostgresStore persists submissions in evidence_submissions. Form types are
// stored with their persisted spelling.
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

const submissionColumns = `id, organization_id, form_type, data, status, submitted_at,
	submitted_by, reviewed_by, reviewed_at, COALESCE(review_reason, '')`

func (s *PostgresStore) Create(ctx context.Context, sub *models.Submission) error {
	data, err := json.Marshal(sub.Data)
	if err != nil {
		return fmt.Errorf("marshal submission data: %w", err)
	}
	query := `
		INSERT INTO evidence_submissions (
			id, organization_id, form_type, data, status, submitted_at, submitted_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.execer(ctx).ExecContext(ctx, query,
		sub.ID.String(),
		sub.OrganizationID.String(),
		forms.ToPersisted(sub.FormType).String(),
		data,
		string(sub.Status),
		sub.SubmittedAt,
		sub.SubmittedBy.String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, orgID id.OrganizationID, subID id.SubmissionID) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + `
		FROM evidence_submissions
		WHERE id = $1 AND organization_id = $2`
	sub, err := scanSubmission(s.execer(ctx).QueryRowContext(ctx, query, subID.String(), orgID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return sub, nil
}

func (s *PostgresStore) ListByFormTypes(ctx context.Context, orgID id.OrganizationID, formTypes []forms.FormType) ([]*models.Submission, error) {
	persisted := make([]string, 0, len(formTypes))
	for _, ft := range formTypes {
		persisted = append(persisted, forms.ToPersisted(ft).String())
	}
	query := `SELECT ` + submissionColumns + `
		FROM evidence_submissions
		WHERE organization_id = $1 AND form_type = ANY($2)
		ORDER BY submitted_at DESC`
	rows, err := s.execer(ctx).QueryContext(ctx, query, orgID.String(), pq.Array(persisted))
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return out, nil
}

// LatestByFormType is the group-by aggregate feeding document freshness.
func (s *PostgresStore) LatestByFormType(ctx context.Context, orgID id.OrganizationID) ([]compliance.LatestSubmission, error) {
	query := `
		SELECT form_type, MAX(submitted_at)
		FROM evidence_submissions
		WHERE organization_id = $1
		GROUP BY form_type
		ORDER BY form_type
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, orgID.String())
	if err != nil {
		return nil, fmt.Errorf("aggregate submissions: %w", err)
	}
	defer rows.Close()

	var out []compliance.LatestSubmission
	for rows.Next() {
		var (
			formType string
			latest   sql.NullTime
		)
		if err := rows.Scan(&formType, &latest); err != nil {
			return nil, fmt.Errorf("scan aggregate: %w", err)
		}
		row := compliance.LatestSubmission{FormType: forms.PersistedFormType(formType)}
		if latest.Valid {
			t := latest.Time
			row.LastSubmittedAt = &t
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aggregate: %w", err)
	}
	return out, nil
}

// UpdateReview applies the review only while the row is still pending, so
// concurrent reviews cannot both succeed.
func (s *PostgresStore) UpdateReview(ctx context.Context, sub *models.Submission) error {
	var reviewedBy sql.NullString
	if sub.ReviewedBy != nil {
		reviewedBy = sql.NullString{String: sub.ReviewedBy.String(), Valid: true}
	}
	query := `
		UPDATE evidence_submissions
		SET status = $1, reviewed_by = $2, reviewed_at = $3, review_reason = NULLIF($4, '')
		WHERE id = $5 AND organization_id = $6 AND status = 'pending'
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		string(sub.Status),
		reviewedBy,
		sub.ReviewedAt,
		sub.ReviewReason,
		sub.ID.String(),
		sub.OrganizationID.String(),
	)
	if err != nil {
		return fmt.Errorf("update submission review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update submission review: %w", err)
	}
	if n == 1 {
		return nil
	}

	var exists bool
	err = s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM evidence_submissions WHERE id = $1 AND organization_id = $2)`,
		sub.ID.String(), sub.OrganizationID.String(),
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check submission: %w", err)
	}
	if !exists {
		return sentinel.ErrNotFound
	}
	return sentinel.ErrInvalidState
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var (
		sub        models.Submission
		subID      string
		orgID      string
		formType   string
		data       []byte
		status     string
		submitter  string
		reviewedBy sql.NullString
		reviewedAt sql.NullTime
	)
	if err := row.Scan(&subID, &orgID, &formType, &data, &status, &sub.SubmittedAt,
		&submitter, &reviewedBy, &reviewedAt, &sub.ReviewReason); err != nil {
		return nil, err
	}

	ft, ok := forms.ExternalOf(forms.PersistedFormType(formType))
	if !ok {
		return nil, fmt.Errorf("unknown stored form type %q", formType)
	}
	if err := json.Unmarshal(data, &sub.Data); err != nil {
		return nil, fmt.Errorf("decode submission data: %w", err)
	}

	sub.ID = id.SubmissionID(subID)
	sub.OrganizationID = id.OrganizationID(orgID)
	sub.FormType = ft
	sub.Status = models.Status(status)
	sub.SubmittedBy = id.UserID(submitter)
	if reviewedBy.Valid {
		reviewer := id.UserID(reviewedBy.String)
		sub.ReviewedBy = &reviewer
	}
	if reviewedAt.Valid {
		at := reviewedAt.Time.In(time.UTC)
		sub.ReviewedAt = &at
	}
	return &sub, nil
}
