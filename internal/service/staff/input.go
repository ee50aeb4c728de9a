package staff

import (
	"github.com/google/uuid"

	"github.com/turutin/intake-backend/internal/domain"
)

// UpdateStatusInput carries a status change request. ActorID is the
// authenticated staff identity, threaded explicitly so audit attribution
// never relies on ambient context.
type UpdateStatusInput struct {
	ApplicationID int64
	NewStatus     domain.Status
	ActorID       uuid.UUID
}

func (in UpdateStatusInput) Validate() error {
	if in.ApplicationID <= 0 {
		return domain.NewValidationError("application_id", "must be positive")
	}
	if !in.NewStatus.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	if in.ActorID == uuid.Nil {
		return domain.NewValidationError("actor_id", "is required")
	}
	return nil
}

// UpdateCommentInput carries a staff comment edit.
type UpdateCommentInput struct {
	ApplicationID int64
	Comment       string
}

func (in UpdateCommentInput) Validate() error {
	if in.ApplicationID <= 0 {
		return domain.NewValidationError("application_id", "must be positive")
	}
	if len(in.Comment) > 2000 {
		return domain.NewValidationError("comment", "must be at most 2000 characters")
	}
	return nil
}

// ListApplicationsInput carries admin listing paging.
type ListApplicationsInput struct {
	Limit  int
	Offset int
}

func (in *ListApplicationsInput) Normalize() {
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 50
	}
	if in.Offset < 0 {
		in.Offset = 0
	}
}
