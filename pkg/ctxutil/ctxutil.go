// Package ctxutil carries request-scoped identifiers through the context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	staffIDKey   ctxKey = "staff_id"
	staffRoleKey ctxKey = "staff_role"
	requestIDKey ctxKey = "request_id"
)

// WithStaff stores the authenticated staff id and role in the context.
func WithStaff(ctx context.Context, id uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, staffIDKey, id)
	return context.WithValue(ctx, staffRoleKey, role)
}

// StaffIDFromCtx extracts the staff id from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func StaffIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(staffIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// StaffRoleFromCtx extracts the staff role from the context.
// Returns an empty string if absent.
func StaffRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(staffRoleKey).(string)
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
