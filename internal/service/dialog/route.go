package dialog

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/turutin/intake-backend/internal/domain"
)

// HandleText routes an inbound free-text message to the pending step.
// A pending profile edit always wins over the application dialog: the two
// excursions keep disjoint state, and when both could consume the message
// the profile edit does.
func (s *Service) HandleText(ctx context.Context, user UserRef, text string) error {
	userID := user.ID
	if err := s.ensureAllowed(ctx, user); err != nil {
		if errors.Is(err, domain.ErrBlocked) {
			return nil
		}
		return err
	}

	state, ok := s.sessions.Get(userID)
	if !ok {
		return s.gateway.Send(ctx, userID, Prompt{Text: msgNothingPending, Actions: startActions()})
	}

	if state.ProfileField != "" {
		return s.submitProfileValue(ctx, userID, state.ProfileField, text)
	}

	switch state.Mode {
	case ModeCollecting:
		return s.submitAnswer(ctx, userID, text)
	case ModeEditing:
		return s.submitEditedAnswer(ctx, userID, text)
	case ModeAwaitingContact:
		return s.submitContact(ctx, userID, text)
	case ModeConfirming, ModePickingEdit:
		return s.gateway.Send(ctx, userID, Prompt{Text: msgUseButtons})
	case ModeCompleted:
		return s.gateway.Send(ctx, userID, Prompt{Text: msgAlreadyDone, Actions: startActions()})
	default:
		return s.gateway.Send(ctx, userID, Prompt{Text: msgNothingPending, Actions: startActions()})
	}
}

// HandleCallback routes a button press by its opaque token.
func (s *Service) HandleCallback(ctx context.Context, user UserRef, token string) error {
	userID := user.ID
	if err := s.ensureAllowed(ctx, user); err != nil {
		if errors.Is(err, domain.ErrBlocked) {
			return nil
		}
		return err
	}

	switch {
	case token == TokenStart:
		return s.Start(ctx, user)
	case token == TokenConfirm:
		return s.confirm(ctx, userID)
	case token == TokenEdit:
		return s.requestEdit(ctx, userID)
	case strings.HasPrefix(token, tokenEditTargetPrefix):
		number, err := strconv.Atoi(strings.TrimPrefix(token, tokenEditTargetPrefix))
		if err != nil {
			s.log.Warn("malformed edit target token", "user_id", userID, "token", token)
			return nil
		}
		return s.selectEditTarget(ctx, userID, number)
	case strings.HasPrefix(token, tokenProfilePrefix):
		field := domain.ProfileField(strings.TrimPrefix(token, tokenProfilePrefix))
		return s.selectProfileField(ctx, userID, field)
	default:
		s.log.Warn("unknown callback token", "user_id", userID, "token", token)
		return nil
	}
}
