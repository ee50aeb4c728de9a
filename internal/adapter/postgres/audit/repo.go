// Package audit implements the status audit trail repository using PostgreSQL.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/turutin/intake-backend/internal/adapter/postgres"
	"github.com/turutin/intake-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides audit trail persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append records a status transition. Intended to run inside the same
// transaction as the status update itself.
func (r *Repo) Append(ctx context.Context, entry domain.StatusAuditEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("status_audit").
		Columns("id", "application_id", "old_status", "new_status", "changed_by").
		Values(entry.ID, entry.ApplicationID, entry.OldStatus.String(), entry.NewStatus.String(), entry.ChangedBy).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit entry", entry.ID.String())
	}

	return nil
}

// ListByApplication returns the transition history for an application,
// oldest first.
func (r *Repo) ListByApplication(ctx context.Context, applicationID int64) ([]domain.StatusAuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("id", "application_id", "old_status", "new_status", "changed_by", "created_at").
		From("status_audit").
		Where(squirrel.Eq{"application_id": applicationID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit entries", fmt.Sprint(applicationID))
	}

	entries := make([]domain.StatusAuditEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}

	return entries, nil
}

type auditRow struct {
	ID            uuid.UUID `db:"id"`
	ApplicationID int64     `db:"application_id"`
	OldStatus     string    `db:"old_status"`
	NewStatus     string    `db:"new_status"`
	ChangedBy     uuid.UUID `db:"changed_by"`
	CreatedAt     time.Time `db:"created_at"`
}

func (row auditRow) toDomain() domain.StatusAuditEntry {
	return domain.StatusAuditEntry{
		ID:            row.ID,
		ApplicationID: row.ApplicationID,
		OldStatus:     domain.Status(row.OldStatus),
		NewStatus:     domain.Status(row.NewStatus),
		ChangedBy:     row.ChangedBy,
		CreatedAt:     row.CreatedAt,
	}
}
