package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/turutin/intake-backend/internal/domain"
)

// UpdateStatus changes an application's status. The status write, the audit
// entry, and the outbox notification row commit in one transaction: the
// audit trail is the durable source of truth, delivery happens later from
// the outbox. A write that does not change the status is a no-op and
// produces neither an audit entry nor a notification.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	changed := false
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		app, err := s.applications.GetForUpdate(ctx, input.ApplicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if app.Status == input.NewStatus {
			return nil
		}

		status, err := s.statuses.FindOrCreate(ctx, input.NewStatus)
		if err != nil {
			return fmt.Errorf("find or create status: %w", err)
		}

		if err := s.applications.SetStatus(ctx, app.ID, status.ID); err != nil {
			return fmt.Errorf("set status: %w", err)
		}

		entry := domain.StatusAuditEntry{
			ID:            uuid.New(),
			ApplicationID: app.ID,
			OldStatus:     app.Status,
			NewStatus:     input.NewStatus,
			ChangedBy:     input.ActorID,
		}
		if err := s.audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		notification := domain.Notification{
			ID:            uuid.New(),
			UserID:        app.UserID,
			ApplicationID: app.ID,
			Status:        input.NewStatus,
			NextAttemptAt: s.now().UTC(),
		}
		if err := s.outbox.Enqueue(ctx, notification); err != nil {
			return fmt.Errorf("enqueue notification: %w", err)
		}

		changed = true
		return nil
	})
	if err != nil {
		return err
	}

	if changed {
		s.log.Info("application status changed",
			"application_id", input.ApplicationID,
			"new_status", input.NewStatus,
			"actor_id", input.ActorID,
		)
	}

	return nil
}
