// Package question implements the read-only question catalog repository.
package question

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

// Repo provides question catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all questions ordered by number.
func (r *Repo) List(ctx context.Context) ([]domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("id", "number", "prompt").
		From("questions").
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []questionRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "questions", "list")
	}

	questions := make([]domain.Question, len(rows))
	for i, row := range rows {
		questions[i] = domain.Question{ID: row.ID, Number: row.Number, Prompt: row.Prompt}
	}

	return questions, nil
}

// Create inserts a question. Used by the seeder only; the bot never writes here.
func (r *Repo) Create(ctx context.Context, number int, prompt string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("questions").
		Columns("number", "prompt").
		Values(number, prompt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "question", fmt.Sprint(number))
	}

	return nil
}

// Count returns the number of configured questions.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COUNT(*)").From("questions").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, postgres.MapError(err, "questions", "count")
	}

	return count, nil
}

type questionRow struct {
	ID     int64  `db:"id"`
	Number int    `db:"number"`
	Prompt string `db:"prompt"`
}
