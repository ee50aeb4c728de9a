// Package status implements the application-status reference table repository.
package status

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/turutin/intake-backend/internal/adapter/postgres"
	"github.com/turutin/intake-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides status reference rows backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new status repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// FindOrCreate returns the row for the given status name, inserting it if
// missing. The name must be one of the closed Status values.
func (r *Repo) FindOrCreate(ctx context.Context, name domain.Status) (*domain.StatusRecord, error) {
	if !name.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("statuses").
		Columns("name").
		Values(name.String()).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name").
		Suffix("RETURNING id, name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row statusRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "status", name.String())
	}

	return &domain.StatusRecord{ID: row.ID, Name: domain.Status(row.Name)}, nil
}

// GetByID returns the status row by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.StatusRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("id", "name").
		From("statuses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row statusRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "status", fmt.Sprint(id))
	}

	return &domain.StatusRecord{ID: row.ID, Name: domain.Status(row.Name)}, nil
}

type statusRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
