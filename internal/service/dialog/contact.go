package dialog

import (
	"context"
	"strings"

	"github.com/turutin/intake-backend/internal/domain"
)

// submitContact classifies free text as an email or a phone number, writes
// it onto the user profile, and finalizes the application. Unclassifiable
// input gets a format error and the user may retry indefinitely.
func (s *Service) submitContact(ctx context.Context, userID, text string) error {
	value := strings.TrimSpace(text)

	var field domain.ProfileField
	switch domain.ClassifyContact(value) {
	case domain.ContactEmail:
		field = domain.ProfileFieldEmail
	case domain.ContactPhone:
		field = domain.ProfileFieldPhone
	default:
		return s.gateway.Send(ctx, userID, Prompt{Text: msgContactInvalid})
	}

	if err := s.users.UpdateField(ctx, userID, field, value); err != nil {
		s.log.Error("save contact", "user_id", userID, "field", field, "error", err)
		return s.gateway.Send(ctx, userID, Prompt{Text: msgFailure})
	}

	return s.finalize(ctx, userID)
}
