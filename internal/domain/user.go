package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a bot user. The ID is the opaque messenger identity
// (Telegram user id rendered as a string); users are created on first
// contact and never hard-deleted.
type User struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	Role      Role
	IsBlocked bool
	CreatedAt time.Time
}

// HasContact reports whether the profile already carries an email or phone.
func (u *User) HasContact() bool {
	return (u.Email != nil && *u.Email != "") || (u.Phone != nil && *u.Phone != "")
}

// StaffUser represents a staff console account used by the admin API.
type StaffUser struct {
	ID           uuid.UUID
	Login        string
	PasswordHash string
	Email        string
	Role         Role
	CreatedAt    time.Time
}
