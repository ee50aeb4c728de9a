// Package application implements the application repository using PostgreSQL.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/turutin/intake-backend/internal/adapter/postgres"
	"github.com/turutin/intake-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new application and returns it with the status name resolved.
func (r *Repo) Create(ctx context.Context, userID string, statusID int64, answers string) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("applications").
		Columns("user_id", "status_id", "answers").
		Values(userID, statusID, answers).
		Suffix("RETURNING id, user_id, status_id, answers, comment, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row applicationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", userID)
	}

	app := row.toDomain()
	return &app, nil
}

// GetForUpdate returns an application with its status name, locking the
// application row for the duration of the surrounding transaction. Callers
// must run inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(
		"a.id", "a.user_id", "a.status_id", "s.name AS status", "a.answers", "a.comment", "a.created_at").
		From("applications a").
		Join("statuses s ON s.id = a.status_id").
		Where(squirrel.Eq{"a.id": id}).
		Suffix("FOR UPDATE OF a").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row applicationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", fmt.Sprint(id))
	}

	app := row.toDomain()
	return &app, nil
}

// SetStatus points the application at a different status row.
func (r *Repo) SetStatus(ctx context.Context, id int64, statusID int64) error {
	return r.setColumn(ctx, id, "status_id", statusID)
}

// SetComment writes the staff comment.
func (r *Repo) SetComment(ctx context.Context, id int64, comment string) error {
	return r.setColumn(ctx, id, "comment", comment)
}

func (r *Repo) setColumn(ctx context.Context, id int64, column string, value any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("applications").
		Set(column, value).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "application", fmt.Sprint(id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountByUser returns the number of applications the user has submitted.
func (r *Repo) CountByUser(ctx context.Context, userID string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COUNT(*)").
		From("applications").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, postgres.MapError(err, "applications", userID)
	}

	return count, nil
}

// ListByUser returns the user's applications with status names, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	return r.list(ctx, squirrel.Eq{"a.user_id": userID}, "a.id ASC", 0, 0)
}

// List returns applications for the admin API, newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Application, error) {
	return r.list(ctx, nil, "a.created_at DESC", limit, offset)
}

func (r *Repo) list(ctx context.Context, where any, orderBy string, limit, offset int) ([]domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Select(
		"a.id", "a.user_id", "a.status_id", "s.name AS status", "a.answers", "a.comment", "a.created_at").
		From("applications a").
		Join("statuses s ON s.id = a.status_id").
		OrderBy(orderBy)
	if where != nil {
		builder = builder.Where(where)
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []applicationRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "applications", "list")
	}

	apps := make([]domain.Application, len(rows))
	for i, row := range rows {
		apps[i] = row.toDomain()
	}

	return apps, nil
}

// CountByStatus returns the number of applications in the given status.
func (r *Repo) CountByStatus(ctx context.Context, name domain.Status) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COUNT(*)").
		From("applications a").
		Join("statuses s ON s.id = a.status_id").
		Where(squirrel.Eq{"s.name": name.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, postgres.MapError(err, "applications", name.String())
	}

	return count, nil
}

// CountCreatedSince returns the number of applications created after the
// given moment. Feeds the admin dashboard's new-applications counter.
func (r *Repo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COUNT(*)").
		From("applications").
		Where(squirrel.Gt{"created_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, postgres.MapError(err, "applications", "created-since")
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type applicationRow struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	StatusID  int64     `db:"status_id"`
	Status    *string   `db:"status"`
	Answers   string    `db:"answers"`
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}

func (row applicationRow) toDomain() domain.Application {
	app := domain.Application{
		ID:        row.ID,
		UserID:    row.UserID,
		StatusID:  row.StatusID,
		Answers:   row.Answers,
		Comment:   row.Comment,
		CreatedAt: row.CreatedAt,
	}
	if row.Status != nil {
		app.Status = domain.Status(*row.Status)
	}
	return app
}
