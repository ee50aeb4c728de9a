package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/turutin/intake-backend/internal/domain"
)

// Greet welcomes a first-time or returning user and offers to start an
// application. Bound to the transport's "start" command.
func (s *Service) Greet(ctx context.Context, user UserRef) error {
	userID := user.ID
	if err := s.ensureAllowed(ctx, user); err != nil {
		if errors.Is(err, domain.ErrBlocked) {
			return nil
		}
		return err
	}

	return s.gateway.Send(ctx, userID, Prompt{
		Text:    "Hello! I will help you submit an application.",
		Actions: startActions(),
	})
}

// Start begins a new dialog: resets any previous conversation state, loads
// the question catalog, and emits the first prompt. With an empty catalog
// the user stays idle.
func (s *Service) Start(ctx context.Context, user UserRef) error {
	userID := user.ID
	if err := s.ensureAllowed(ctx, user); err != nil {
		if errors.Is(err, domain.ErrBlocked) {
			return nil
		}
		return err
	}

	questions, err := s.questions.List(ctx)
	if err != nil {
		return fmt.Errorf("list questions: %w", err)
	}
	if len(questions) == 0 {
		s.sessions.Clear(userID)
		return s.gateway.Send(ctx, userID, Prompt{Text: msgNoQuestions})
	}

	s.sessions.Update(userID, func(st *ConversationState) {
		*st = ConversationState{
			UserID:    userID,
			Mode:      ModeCollecting,
			Questions: questions,
			Answers:   make([]string, 0, len(questions)),
		}
	})

	s.log.Info("dialog started", "user_id", userID, "questions", len(questions))

	return s.gateway.Send(ctx, userID, Prompt{Text: questions[0].Prompt})
}

// Reset discards the user's conversation state entirely.
func (s *Service) Reset(ctx context.Context, user UserRef) error {
	userID := user.ID
	if err := s.ensureAllowed(ctx, user); err != nil {
		if errors.Is(err, domain.ErrBlocked) {
			return nil
		}
		return err
	}

	s.sessions.Clear(userID)
	return s.gateway.Send(ctx, userID, Prompt{Text: msgReset, Actions: startActions()})
}
