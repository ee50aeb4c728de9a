// Package staff implements the staff user repository using PostgreSQL.
package staff

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

var columns = []string{"id", "login", "password_hash", "email", "role", "created_at"}

// Repo provides staff user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new staff repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a staff account. Used by the seeder.
func (r *Repo) Create(ctx context.Context, u domain.StaffUser) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("staff_users").
		Columns("id", "login", "password_hash", "email", "role").
		Values(u.ID, u.Login, u.PasswordHash, u.Email, u.Role.String()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "staff user", u.Login)
	}

	return nil
}

// GetByLogin returns the staff account with the given login.
func (r *Repo) GetByLogin(ctx context.Context, login string) (*domain.StaffUser, error) {
	return r.getBy(ctx, squirrel.Eq{"login": login}, login)
}

// GetByID returns the staff account with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffUser, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id.String())
}

func (r *Repo) getBy(ctx context.Context, where squirrel.Eq, key string) (*domain.StaffUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("staff_users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row staffRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "staff user", key)
	}

	user := row.toDomain()
	return &user, nil
}

// AnyContactEmail returns the email of the longest-standing staff account,
// or ErrNotFound when no staff exist. Shown to blocked users as a way to
// reach a human.
func (r *Repo) AnyContactEmail(ctx context.Context) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("email").
		From("staff_users").
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	var email string
	if err := pgxscan.Get(ctx, q, &email, sql, args...); err != nil {
		return "", postgres.MapError(err, "staff user", "contact email")
	}

	return email, nil
}

type staffRow struct {
	ID           uuid.UUID `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func (row staffRow) toDomain() domain.StaffUser {
	return domain.StaffUser{
		ID:           row.ID,
		Login:        row.Login,
		PasswordHash: row.PasswordHash,
		Email:        row.Email,
		Role:         domain.Role(row.Role),
		CreatedAt:    row.CreatedAt,
	}
}
