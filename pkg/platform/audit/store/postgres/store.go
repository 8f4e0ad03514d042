package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	id "comply/pkg/domain"
	audit "comply/pkg/platform/audit"
	txcontext "comply/pkg/platform/tx"
)

// Store implements audit.Store on the audit_events table. Writes join the
// caller's transaction when one is in the context.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Append inserts an audit event. The category is always derived from the
// action.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	category := audit.AuditEvent(event.Action).Category()

	query := `
		INSERT INTO audit_events (
			id, category, occurred_at, organization_id, actor_id, subject,
			action, decision, reason, request_id, client_agent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.New(),
		string(category),
		event.Timestamp,
		event.OrganizationID.String(),
		nullString(event.ActorID.String()),
		event.Subject,
		event.Action,
		nullString(event.Decision),
		nullString(event.Reason),
		nullString(event.RequestID),
		nullString(event.ClientAgent),
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByOrganization returns the most recent events of an organization.
func (s *Store) ListByOrganization(ctx context.Context, orgID id.OrganizationID, limit int) ([]audit.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT category, occurred_at, organization_id, COALESCE(actor_id, ''), subject,
			action, COALESCE(decision, ''), COALESCE(reason, ''),
			COALESCE(request_id, ''), COALESCE(client_agent, '')
		FROM audit_events
		WHERE organization_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, orgID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			e        audit.Event
			category string
			org      string
			actor    string
		)
		if err := rows.Scan(&category, &e.Timestamp, &org, &actor, &e.Subject,
			&e.Action, &e.Decision, &e.Reason, &e.RequestID, &e.ClientAgent); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Category = audit.EventCategory(category)
		e.OrganizationID = id.OrganizationID(org)
		e.ActorID = id.UserID(actor)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
