// Package dialog implements the conversational intake engine: a per-user
// state machine that walks a user through the question catalog, supports
// answer editing and confirmation, collects contact details, and persists
// the finished application.
package dialog

import (
	"context"
	"log/slog"

	"github.com/turutin/intake-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetOrCreate(ctx context.Context, id, name string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	IsBlocked(ctx context.Context, id string) (bool, error)
	UpdateField(ctx context.Context, id string, field domain.ProfileField, value string) error
}

type questionRepo interface {
	List(ctx context.Context) ([]domain.Question, error)
}

type statusRepo interface {
	FindOrCreate(ctx context.Context, name domain.Status) (*domain.StatusRecord, error)
}

type applicationRepo interface {
	Create(ctx context.Context, userID string, statusID int64, answers string) (*domain.Application, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Application, error)
}

type staffRepo interface {
	AnyContactEmail(ctx context.Context) (string, error)
}

type messagingGateway interface {
	Send(ctx context.Context, userID string, prompt Prompt) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the dialog engine. All public methods are safe for concurrent
// use across users; events for a single user must be serialized by the
// caller (see Dispatcher).
type Service struct {
	users        userRepo
	questions    questionRepo
	statuses     statusRepo
	applications applicationRepo
	staff        staffRepo
	gateway      messagingGateway
	tx           txManager
	sessions     *Store
	log          *slog.Logger
}

// NewService creates a new dialog engine.
func NewService(
	log *slog.Logger,
	users userRepo,
	questions questionRepo,
	statuses statusRepo,
	applications applicationRepo,
	staff staffRepo,
	gateway messagingGateway,
	tx txManager,
	sessions *Store,
) *Service {
	return &Service{
		users:        users,
		questions:    questions,
		statuses:     statuses,
		applications: applications,
		staff:        staff,
		gateway:      gateway,
		tx:           tx,
		sessions:     sessions,
		log:          log.With("service", "dialog"),
	}
}
