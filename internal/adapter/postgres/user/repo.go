// Package user implements the bot-user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/turutin/intake-backend/internal/adapter/postgres"
	"github.com/turutin/intake-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{"id", "name", "email", "phone", "role", "is_blocked", "created_at"}

// Repo provides bot-user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by messenger identity.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// GetOrCreate returns the user with the given id, inserting a fresh
// customer row on first contact.
func (r *Repo) GetOrCreate(ctx context.Context, id, name string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("users").
		Columns("id", "name", "role", "is_blocked").
		Values(id, name, domain.RoleCustomer.String(), false).
		Suffix("ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id").
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// IsBlocked returns the current block flag for the user. Always a fresh
// read; callers must not cache the result across inbound events.
func (r *Repo) IsBlocked(ctx context.Context, id string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("is_blocked").From("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var blocked bool
	if err := pgxscan.Get(ctx, q, &blocked, sql, args...); err != nil {
		return false, postgres.MapError(err, "user", id)
	}

	return blocked, nil
}

// UpdateField writes a single profile field (name, email, or phone).
func (r *Repo) UpdateField(ctx context.Context, id string, field domain.ProfileField, value string) error {
	if !field.IsValid() {
		return domain.NewValidationError("field", "unknown profile field")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("users").
		Set(field.String(), value).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SetBlocked toggles the block flag on a user.
func (r *Repo) SetBlocked(ctx context.Context, id string, blocked bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("users").
		Set("is_blocked", blocked).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     *string   `db:"email"`
	Phone     *string   `db:"phone"`
	Role      string    `db:"role"`
	IsBlocked bool      `db:"is_blocked"`
	CreatedAt time.Time `db:"created_at"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Role:      domain.Role(row.Role),
		IsBlocked: row.IsBlocked,
		CreatedAt: row.CreatedAt,
	}
}
