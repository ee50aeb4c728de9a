// Package notifier drains the notification outbox: rows enqueued by the
// staff write path are delivered to users through the messaging gateway,
// with retry and backoff, fully decoupled from the transaction that created
// them.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/turutin/intake-backend/internal/config"
	"github.com/turutin/intake-backend/internal/domain"
)

type outboxRepo interface {
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.Notification, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error
	Reschedule(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
}

type messagingGateway interface {
	SendText(ctx context.Context, userID, text string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Worker polls the outbox and delivers pending notifications.
type Worker struct {
	outbox  outboxRepo
	gateway messagingGateway
	tx      txManager
	cfg     config.NotifierConfig
	now     func() time.Time
	log     *slog.Logger
}

// NewWorker creates an outbox drain worker.
func NewWorker(log *slog.Logger, outbox outboxRepo, gateway messagingGateway, tx txManager, cfg config.NotifierConfig) *Worker {
	return &Worker{
		outbox:  outbox,
		gateway: gateway,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
		log:     log.With("service", "notifier"),
	}
}

// Run polls the outbox until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.log.Info("notifier started",
		"poll_interval", w.cfg.PollInterval,
		"batch_size", w.cfg.BatchSize,
		"max_attempts", w.cfg.MaxAttempts,
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if delivered, err := w.RunOnce(ctx); err != nil {
				w.log.Error("outbox pass failed", "error", err)
			} else if delivered > 0 {
				w.log.Info("notifications delivered", "count", delivered)
			}
		}
	}
}

// RunOnce claims one batch of due notifications, leases each claimed row to
// its next backoff slot inside the claiming transaction (so a concurrent
// worker cannot pick it up mid-delivery), then delivers outside any
// transaction and settles each row: delivered, rescheduled, or failed after
// the attempt budget is spent.
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	now := w.now().UTC()

	var batch []domain.Notification
	err := w.tx.RunInTx(ctx, func(ctx context.Context) error {
		claimed, err := w.outbox.ClaimDue(ctx, now, w.cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("claim due: %w", err)
		}
		for _, n := range claimed {
			attempts := n.Attempts + 1
			if err := w.outbox.Reschedule(ctx, n.ID, attempts, now.Add(w.backoff(attempts)), ""); err != nil {
				return fmt.Errorf("lease %s: %w", n.ID, err)
			}
		}
		batch = claimed
		return nil
	})
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, n := range batch {
		attempts := n.Attempts + 1

		if sendErr := w.gateway.SendText(ctx, n.UserID, notificationText(n)); sendErr != nil {
			w.settleFailure(ctx, n, attempts, now, sendErr)
			continue
		}

		if err := w.outbox.MarkDelivered(ctx, n.ID, w.now().UTC()); err != nil {
			w.log.Error("mark delivered", "notification_id", n.ID, "error", err)
			continue
		}
		delivered++
	}

	return delivered, nil
}

func (w *Worker) settleFailure(ctx context.Context, n domain.Notification, attempts int, now time.Time, sendErr error) {
	w.log.Warn("notification delivery failed",
		"notification_id", n.ID,
		"user_id", n.UserID,
		"attempt", attempts,
		"error", sendErr,
	)

	if attempts >= w.cfg.MaxAttempts {
		if err := w.outbox.MarkFailed(ctx, n.ID, attempts, sendErr.Error()); err != nil {
			w.log.Error("mark failed", "notification_id", n.ID, "error", err)
		}
		return
	}

	if err := w.outbox.Reschedule(ctx, n.ID, attempts, now.Add(w.backoff(attempts)), sendErr.Error()); err != nil {
		w.log.Error("reschedule", "notification_id", n.ID, "error", err)
	}
}

// backoff doubles per attempt starting from the configured base, capped.
func (w *Worker) backoff(attempts int) time.Duration {
	d := w.cfg.BackoffBase
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= w.cfg.BackoffCap {
			return w.cfg.BackoffCap
		}
	}
	if d > w.cfg.BackoffCap {
		return w.cfg.BackoffCap
	}
	return d
}

func notificationText(n domain.Notification) string {
	return fmt.Sprintf("The status of your application #%d is now %q.", n.ApplicationID, statusLabel(n.Status))
}

func statusLabel(s domain.Status) string {
	switch s {
	case domain.StatusOpen:
		return "open"
	case domain.StatusInProgress:
		return "in progress"
	case domain.StatusClosed:
		return "closed"
	default:
		return s.String()
	}
}
