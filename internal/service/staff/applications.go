package staff

import (
	"context"
	"fmt"

	"github.com/turutin/intake-backend/internal/domain"
)

// UpdateComment writes the staff comment on an application.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.applications.SetComment(ctx, input.ApplicationID, input.Comment); err != nil {
		return fmt.Errorf("set comment: %w", err)
	}

	return nil
}

// ListApplications returns applications for the admin listing, newest first.
func (s *Service) ListApplications(ctx context.Context, input ListApplicationsInput) ([]domain.Application, error) {
	input.Normalize()

	apps, err := s.applications.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return apps, nil
}

// GetAuditTrail returns the status transition history for an application,
// oldest first.
func (s *Service) GetAuditTrail(ctx context.Context, applicationID int64) ([]domain.StatusAuditEntry, error) {
	if applicationID <= 0 {
		return nil, domain.NewValidationError("application_id", "must be positive")
	}

	entries, err := s.audit.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	return entries, nil
}

// SetUserBlocked toggles the block flag on a bot user. The dialog engine
// reads the flag fresh on every inbound event, so the change takes effect
// on the user's next message.
func (s *Service) SetUserBlocked(ctx context.Context, userID string, blocked bool) error {
	if userID == "" {
		return domain.NewValidationError("user_id", "is required")
	}

	if err := s.users.SetBlocked(ctx, userID, blocked); err != nil {
		return fmt.Errorf("set blocked: %w", err)
	}

	s.log.Info("user block flag changed", "user_id", userID, "blocked", blocked)
	return nil
}
