package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/turutin/intake-backend/internal/domain"
)

// LoginInput carries staff credentials.
type LoginInput struct {
	Login    string
	Password string
}

func (in LoginInput) Validate() error {
	if in.Login == "" {
		return domain.NewValidationError("login", "is required")
	}
	if in.Password == "" {
		return domain.NewValidationError("password", "is required")
	}
	return nil
}

// AuthResult is a successful login outcome.
type AuthResult struct {
	AccessToken string
	Staff       *domain.StaffUser
}

// Login authenticates a staff account with login + password.
// Returns ErrUnauthorized if the login is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Login = strings.TrimSpace(input.Login)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	staff, err := s.staff.GetByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get staff user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(staff.ID, staff.Role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	s.log.InfoContext(ctx, "staff logged in", "staff_id", staff.ID.String())

	return &AuthResult{AccessToken: token, Staff: staff}, nil
}
