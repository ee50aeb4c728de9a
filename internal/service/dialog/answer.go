package dialog

import (
	"context"

	"github.com/turutin/intake-backend/internal/domain"
)

// submitAnswer records the answer to the current question. Junk answers
// (fewer than 5 words, or fewer than 5 non-numeric words) are rejected and
// the question index does not advance. After the last question the engine
// renders a summary and awaits confirmation.
func (s *Service) submitAnswer(ctx context.Context, userID, text string) error {
	if !domain.IsSubstantiveAnswer(text) {
		return s.gateway.Send(ctx, userID, Prompt{Text: msgAnswerTooShort})
	}

	var out Prompt
	s.sessions.Update(userID, func(st *ConversationState) {
		if st.Mode != ModeCollecting {
			out = Prompt{Text: msgNothingPending, Actions: startActions()}
			return
		}

		st.Answers = append(st.Answers, text)
		if st.Index+1 < len(st.Questions) {
			st.Index++
			out = Prompt{Text: st.Questions[st.Index].Prompt}
			return
		}

		st.Mode = ModeConfirming
		out = summaryPrompt(st.Questions, st.Answers)
	})

	return s.gateway.Send(ctx, userID, out)
}

// submitEditedAnswer overwrites the answer slot picked during the edit
// excursion and returns the user to the confirmation summary. Only the
// targeted slot changes.
func (s *Service) submitEditedAnswer(ctx context.Context, userID, text string) error {
	if !domain.IsSubstantiveAnswer(text) {
		return s.gateway.Send(ctx, userID, Prompt{Text: msgAnswerTooShort})
	}

	var out Prompt
	s.sessions.Update(userID, func(st *ConversationState) {
		if st.Mode != ModeEditing || st.EditTarget < 1 || st.EditTarget > len(st.Answers) {
			out = Prompt{Text: msgNothingPending, Actions: startActions()}
			return
		}

		st.Answers[st.EditTarget-1] = text
		st.EditTarget = 0
		st.Mode = ModeConfirming
		out = summaryPrompt(st.Questions, st.Answers)
	})

	return s.gateway.Send(ctx, userID, out)
}
