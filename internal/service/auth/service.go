// Package auth implements staff authentication for the admin API.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/turutin/intake-backend/internal/domain"
)

// staffRepo defines the staff repository interface needed by the auth service.
type staffRepo interface {
	GetByLogin(ctx context.Context, login string) (*domain.StaffUser, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(staffID uuid.UUID, role domain.Role) (string, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	staff staffRepo
	jwt   jwtManager
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, staff staffRepo, jwt jwtManager) *Service {
	return &Service{
		log:   log.With("service", "auth"),
		staff: staff,
		jwt:   jwt,
	}
}
