// Package outbox implements the notification outbox repository using
// PostgreSQL. Rows are enqueued inside the status-change transaction and
// drained by the notifier worker.
package outbox

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

// Repo provides outbox persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new outbox repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Enqueue inserts a pending notification. Intended to run inside the same
// transaction as the status change it announces.
func (r *Repo) Enqueue(ctx context.Context, n domain.Notification) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("notification_outbox").
		Columns("id", "user_id", "application_id", "status", "state", "next_attempt_at").
		Values(n.ID, n.UserID, n.ApplicationID, n.Status.String(), domain.OutboxStatePending.String(), n.NextAttemptAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "notification", n.ID.String())
	}

	return nil
}

// ClaimDue locks and returns up to limit pending notifications whose next
// attempt is due. Uses FOR UPDATE SKIP LOCKED so concurrent workers never
// claim the same row. Callers must run inside TxManager.RunInTx and mark
// each claimed row before committing.
func (r *Repo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(
		"id", "user_id", "application_id", "status", "state",
		"attempts", "next_attempt_at", "last_error", "created_at", "delivered_at").
		From("notification_outbox").
		Where(squirrel.Eq{"state": domain.OutboxStatePending.String()}).
		Where(squirrel.LtOrEq{"next_attempt_at": now}).
		OrderBy("next_attempt_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []outboxRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "notifications", "claim")
	}

	notifications := make([]domain.Notification, len(rows))
	for i, row := range rows {
		notifications[i] = row.toDomain()
	}

	return notifications, nil
}

// MarkDelivered transitions a claimed notification to the delivered state.
func (r *Repo) MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.update(ctx, id, map[string]any{
		"state":        domain.OutboxStateDelivered.String(),
		"delivered_at": at,
		"last_error":   nil,
	})
}

// Reschedule records an attempt and pushes the next one forward. An empty
// lastError leaves the column NULL.
func (r *Repo) Reschedule(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastError string) error {
	var errVal any
	if lastError != "" {
		errVal = lastError
	}
	return r.update(ctx, id, map[string]any{
		"state":           domain.OutboxStatePending.String(),
		"attempts":        attempts,
		"next_attempt_at": nextAttemptAt,
		"last_error":      errVal,
	})
}

// MarkFailed gives up on a notification after the attempt budget is spent.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	return r.update(ctx, id, map[string]any{
		"state":      domain.OutboxStateFailed.String(),
		"attempts":   attempts,
		"last_error": lastError,
	})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("notification_outbox").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "notification", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteFinished removes delivered and failed rows older than the cutoff.
// Returns the number of rows removed.
func (r *Repo) DeleteFinished(ctx context.Context, before time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("notification_outbox").
		Where(squirrel.Eq{"state": []string{
			domain.OutboxStateDelivered.String(),
			domain.OutboxStateFailed.String(),
		}}).
		Where(squirrel.Lt{"created_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "notifications", "cleanup")
	}

	return tag.RowsAffected(), nil
}

type outboxRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        string     `db:"user_id"`
	ApplicationID int64      `db:"application_id"`
	Status        string     `db:"status"`
	State         string     `db:"state"`
	Attempts      int        `db:"attempts"`
	NextAttemptAt time.Time  `db:"next_attempt_at"`
	LastError     *string    `db:"last_error"`
	CreatedAt     time.Time  `db:"created_at"`
	DeliveredAt   *time.Time `db:"delivered_at"`
}

func (row outboxRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:            row.ID,
		UserID:        row.UserID,
		ApplicationID: row.ApplicationID,
		Status:        domain.Status(row.Status),
		State:         domain.OutboxState(row.State),
		Attempts:      row.Attempts,
		NextAttemptAt: row.NextAttemptAt,
		LastError:     row.LastError,
		CreatedAt:     row.CreatedAt,
		DeliveredAt:   row.DeliveredAt,
	}
}
