package dialog

import (
	"context"
	"fmt"
)

// requestEdit switches the confirmation view to a question picker with one
// selectable entry per question.
func (s *Service) requestEdit(ctx context.Context, userID string) error {
	var out Prompt
	s.sessions.Update(userID, func(st *ConversationState) {
		if st.Mode != ModeConfirming {
			out = Prompt{Text: msgNothingPending, Actions: startActions()}
			return
		}

		st.Mode = ModePickingEdit
		actions := make([]Action, len(st.Questions))
		for i, q := range st.Questions {
			actions[i] = Action{
				Label: fmt.Sprintf("%d. %s", i+1, truncate(q.Prompt, 40)),
				Token: fmt.Sprintf("%s%d", tokenEditTargetPrefix, i+1),
			}
		}
		out = Prompt{Text: msgPickQuestion, Actions: actions}
	})

	return s.gateway.Send(ctx, userID, out)
}

// selectEditTarget enters editing mode for the picked question and re-emits
// its original prompt. An out-of-range pick is a recoverable user error.
func (s *Service) selectEditTarget(ctx context.Context, userID string, number int) error {
	var out Prompt
	s.sessions.Update(userID, func(st *ConversationState) {
		if st.Mode != ModePickingEdit && st.Mode != ModeConfirming {
			out = Prompt{Text: msgNothingPending, Actions: startActions()}
			return
		}
		if number < 1 || number > len(st.Questions) {
			out = Prompt{Text: msgUnknownTarget}
			return
		}

		st.Mode = ModeEditing
		st.EditTarget = number
		out = Prompt{Text: st.Questions[number-1].Prompt}
	})

	return s.gateway.Send(ctx, userID, out)
}
