// Package staff implements staff-facing operations on applications: status
// changes with an atomic audit trail and outbox-backed user notification,
// comment editing, user blocking, listings, and dashboard counters.
package staff

import (
	"context"
	"log/slog"
	"time"

	"github.com/turutin/intake-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type applicationRepo interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Application, error)
	SetStatus(ctx context.Context, id int64, statusID int64) error
	SetComment(ctx context.Context, id int64, comment string) error
	List(ctx context.Context, limit, offset int) ([]domain.Application, error)
	CountByStatus(ctx context.Context, name domain.Status) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

type statusRepo interface {
	FindOrCreate(ctx context.Context, name domain.Status) (*domain.StatusRecord, error)
}

type auditRepo interface {
	Append(ctx context.Context, entry domain.StatusAuditEntry) error
	ListByApplication(ctx context.Context, applicationID int64) ([]domain.StatusAuditEntry, error)
}

type outboxRepo interface {
	Enqueue(ctx context.Context, n domain.Notification) error
}

type userRepo interface {
	SetBlocked(ctx context.Context, id string, blocked bool) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the staff business logic.
type Service struct {
	applications applicationRepo
	statuses     statusRepo
	audit        auditRepo
	outbox       outboxRepo
	users        userRepo
	tx           txManager
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new staff service.
func NewService(
	log *slog.Logger,
	applications applicationRepo,
	statuses statusRepo,
	audit auditRepo,
	outbox outboxRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		applications: applications,
		statuses:     statuses,
		audit:        audit,
		outbox:       outbox,
		users:        users,
		tx:           tx,
		now:          time.Now,
		log:          log.With("service", "staff"),
	}
}
