package dialog

import (
	"context"
	"fmt"

	"github.com/turutin/intake-backend/internal/domain"
)

// confirm accepts the reviewed answers. If the user's profile already
// carries an email or phone the application finalizes immediately;
// otherwise the engine asks for contact details first.
func (s *Service) confirm(ctx context.Context, userID string) error {
	state, ok := s.sessions.Get(userID)
	if !ok || state.Mode != ModeConfirming {
		return s.gateway.Send(ctx, userID, Prompt{Text: msgNothingPending, Actions: startActions()})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if user.HasContact() {
		return s.finalize(ctx, userID)
	}

	s.sessions.Update(userID, func(st *ConversationState) {
		if st.Mode == ModeConfirming {
			st.Mode = ModeAwaitingContact
		}
	})

	return s.gateway.Send(ctx, userID, Prompt{Text: msgContactRequest})
}

// finalize persists the application with status open and reports the
// user's application ordinal. The conversation state advances to completed
// only after the transaction commits, so a failed write leaves the dialog
// where it was. The completed marker keeps a trailing stray message from
// restarting the flow.
func (s *Service) finalize(ctx context.Context, userID string) error {
	state, ok := s.sessions.Get(userID)
	if !ok {
		return s.gateway.Send(ctx, userID, Prompt{Text: msgNothingPending, Actions: startActions()})
	}

	answers := renderAnswers(state.Questions, state.Answers)

	var ordinal int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		status, err := s.statuses.FindOrCreate(ctx, domain.StatusOpen)
		if err != nil {
			return fmt.Errorf("find or create status: %w", err)
		}

		prior, err := s.applications.CountByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("count applications: %w", err)
		}

		if _, err := s.applications.Create(ctx, userID, status.ID, answers); err != nil {
			return fmt.Errorf("create application: %w", err)
		}

		ordinal = prior + 1
		return nil
	})
	if err != nil {
		s.log.Error("finalize application", "user_id", userID, "error", err)
		return s.gateway.Send(ctx, userID, Prompt{Text: msgFailure})
	}

	s.sessions.Update(userID, func(st *ConversationState) {
		st.Mode = ModeCompleted
		st.Questions = nil
		st.Answers = nil
		st.Index = 0
		st.EditTarget = 0
	})

	s.log.Info("application submitted", "user_id", userID, "ordinal", ordinal)

	return s.gateway.Send(ctx, userID, Prompt{Text: fmt.Sprintf(msgCompleted, ordinal)})
}
