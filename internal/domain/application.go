package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is a persisted record of one completed intake dialog.
// Status and Comment are the only fields mutable after creation, and only
// through staff actions.
type Application struct {
	ID        int64
	UserID    string
	StatusID  int64
	Status    Status
	Answers   string
	Comment   *string
	CreatedAt time.Time
}

// StatusRecord is a row of the status reference table.
type StatusRecord struct {
	ID   int64
	Name Status
}

// StatusAuditEntry records one distinct status transition on an application.
// Append-only; never written for no-op saves.
type StatusAuditEntry struct {
	ID            uuid.UUID
	ApplicationID int64
	OldStatus     Status
	NewStatus     Status
	ChangedBy     uuid.UUID
	CreatedAt     time.Time
}
