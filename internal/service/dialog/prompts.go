package dialog

import (
	"fmt"
	"strings"

	"github.com/turutin/intake-backend/internal/domain"
)

// Action is a selectable button attached to a prompt. Token is an opaque
// callback payload routed back through HandleCallback.
type Action struct {
	Label string
	Token string
}

// Prompt is a logical outbound message: plain text plus an optional fixed
// set of actions. Transport-specific markup is the gateway's concern.
type Prompt struct {
	Text    string
	Actions []Action
}

// Callback tokens.
const (
	TokenStart            = "app:start"
	TokenConfirm          = "app:confirm"
	TokenEdit             = "app:edit"
	tokenEditTargetPrefix = "app:edit:"
	tokenProfilePrefix    = "profile:"
)

const (
	msgNoQuestions     = "The application form is not configured yet. Please try again later."
	msgAnswerTooShort  = "Please give a fuller answer: at least 5 words, and not just numbers."
	msgNothingPending  = "Nothing is in progress. Press the button below to start an application."
	msgUseButtons      = "Please use the buttons above to continue."
	msgAlreadyDone     = "Your application has already been submitted. Start a new one whenever you like."
	msgPickQuestion    = "Which answer would you like to change?"
	msgUnknownTarget   = "That question is not in your application. Pick one from the list."
	msgContactRequest  = "Almost done. Please share an email address or a phone number so we can reach you."
	msgContactInvalid  = "That does not look like an email or a phone number. Please try again."
	msgCompleted       = "Thank you! Application #%d has been submitted. We will be in touch."
	msgFailure         = "Something went wrong on our side. Please try again in a minute."
	msgReset           = "Your current application has been discarded."
	msgBlocked         = "Your account is blocked. You cannot submit applications."
	msgBlockedContact  = "Your account is blocked. You cannot submit applications. To appeal, write to %s."
	msgNoApplications  = "You have no applications yet."
	msgProfileValue    = "Send the new value for %q."
	msgProfileUpdated  = "Your profile has been updated."
	msgProfileBadValue = "That value does not look right for %q. Please try again."
)

func startActions() []Action {
	return []Action{{Label: "Start application", Token: TokenStart}}
}

// summaryPrompt renders the collected answers for review with confirm and
// edit actions.
func summaryPrompt(questions []domain.Question, answers []string) Prompt {
	var b strings.Builder
	b.WriteString("Please check your answers:\n")
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		fmt.Fprintf(&b, "\n%d. %s\n%s\n", i+1, q.Prompt, answers[i])
	}
	return Prompt{
		Text: b.String(),
		Actions: []Action{
			{Label: "Submit", Token: TokenConfirm},
			{Label: "Change an answer", Token: TokenEdit},
		},
	}
}

// renderAnswers serializes question and answer pairs into the persisted
// Application.answers representation.
func renderAnswers(questions []domain.Question, answers []string) string {
	var b strings.Builder
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n%s\n\n", i+1, q.Prompt, answers[i])
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func statusLabel(s domain.Status) string {
	switch s {
	case domain.StatusOpen:
		return "open"
	case domain.StatusInProgress:
		return "in progress"
	case domain.StatusClosed:
		return "closed"
	default:
		return s.String()
	}
}

func fieldLabel(f domain.ProfileField) string {
	switch f {
	case domain.ProfileFieldName:
		return "name"
	case domain.ProfileFieldEmail:
		return "email"
	case domain.ProfileFieldPhone:
		return "phone"
	default:
		return f.String()
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
