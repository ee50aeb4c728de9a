package dialog

import (
	"github.com/turutin/intake-backend/internal/domain"
)

// UserRef identifies the inbound sender: the messenger id plus the display
// name the transport saw on this update. The name is only consulted when
// the user row is first created.
type UserRef struct {
	ID   string
	Name string
}

// Mode identifies where a user currently is in the application dialog.
type Mode string

const (
	ModeIdle            Mode = "idle"
	ModeCollecting      Mode = "collecting"
	ModeConfirming      Mode = "confirming"
	ModePickingEdit     Mode = "picking_edit"
	ModeEditing         Mode = "editing"
	ModeAwaitingContact Mode = "awaiting_contact"
	ModeCompleted       Mode = "completed"
)

// ConversationState is the ephemeral per-user record tracking dialog
// progress. Questions are snapshotted when the dialog starts so catalog
// changes never shift answer slots mid-session.
//
// ProfileField is orthogonal to the dialog fields: when it is set, the next
// free-text message is a profile value regardless of Mode.
type ConversationState struct {
	UserID       string
	Mode         Mode
	Questions    []domain.Question
	Answers      []string
	Index        int
	EditTarget   int                 // 1-based question position, 0 when not editing
	ProfileField domain.ProfileField // empty when no profile edit is pending
}
