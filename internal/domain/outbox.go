package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a queued status-change notification. Rows are written in
// the same transaction as the status change and drained by the notifier
// worker, so delivery failures never touch the originating write.
type Notification struct {
	ID            uuid.UUID
	UserID        string
	ApplicationID int64
	Status        Status
	State         OutboxState
	Attempts      int
	NextAttemptAt time.Time
	LastError     *string
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}
