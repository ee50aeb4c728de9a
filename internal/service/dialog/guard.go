package dialog

import (
	"context"
	"fmt"

	"github.com/turutin/intake-backend/internal/domain"
)

// ensureAllowed registers the user on first contact and rejects blocked
// users before any state transition runs. The block flag is read fresh on
// every call: a user blocked mid-dialog is rejected on their next message.
// Blocked users get a fixed message, with a staff contact address when the
// lookup succeeds; lookup failure degrades to the plain message.
func (s *Service) ensureAllowed(ctx context.Context, user UserRef) error {
	userID := user.ID
	if _, err := s.users.GetOrCreate(ctx, userID, user.Name); err != nil {
		return fmt.Errorf("get or create user: %w", err)
	}

	blocked, err := s.users.IsBlocked(ctx, userID)
	if err != nil {
		return fmt.Errorf("check block flag: %w", err)
	}
	if !blocked {
		return nil
	}

	text := msgBlocked
	if email, lookupErr := s.staff.AnyContactEmail(ctx); lookupErr == nil {
		text = fmt.Sprintf(msgBlockedContact, email)
	}
	if sendErr := s.gateway.Send(ctx, userID, Prompt{Text: text}); sendErr != nil {
		s.log.Warn("send block notice", "user_id", userID, "error", sendErr)
	}

	return domain.ErrBlocked
}
