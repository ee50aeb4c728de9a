// Package seeder populates reference data: the question catalog, the
// status dictionary, and the initial operator account. All operations are
// idempotent so the seeder can run on every deploy.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/turutin/intake-backend/internal/domain"
)

// DefaultQuestions is the intake questionnaire seeded on a fresh install.
var DefaultQuestions = []string{
	"Describe your project in a few sentences.",
	"What problem are you trying to solve?",
	"Who are the users of the product?",
	"What is your expected timeline?",
	"What budget range are you considering?",
}

type questionRepo interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, number int, prompt string) error
}

type statusRepo interface {
	FindOrCreate(ctx context.Context, name domain.Status) (*domain.StatusRecord, error)
}

type staffRepo interface {
	GetByLogin(ctx context.Context, login string) (*domain.StaffUser, error)
	Create(ctx context.Context, u domain.StaffUser) error
}

// Seeder seeds reference data through the repositories.
type Seeder struct {
	questions questionRepo
	statuses  statusRepo
	staff     staffRepo
	log       *slog.Logger
}

// New creates a Seeder.
func New(log *slog.Logger, questions questionRepo, statuses statusRepo, staff staffRepo) *Seeder {
	return &Seeder{
		questions: questions,
		statuses:  statuses,
		staff:     staff,
		log:       log.With("component", "seeder"),
	}
}

// SeedQuestions inserts the default questionnaire if the catalog is empty.
// An existing catalog is left untouched so live edits survive reseeding.
func (s *Seeder) SeedQuestions(ctx context.Context) error {
	count, err := s.questions.Count(ctx)
	if err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		s.log.InfoContext(ctx, "question catalog already populated", "count", count)
		return nil
	}

	for i, prompt := range DefaultQuestions {
		if err := s.questions.Create(ctx, i+1, prompt); err != nil {
			return fmt.Errorf("create question %d: %w", i+1, err)
		}
	}
	s.log.InfoContext(ctx, "seeded question catalog", "count", len(DefaultQuestions))
	return nil
}

// SeedStatuses ensures the three lifecycle statuses exist.
func (s *Seeder) SeedStatuses(ctx context.Context) error {
	for _, status := range []domain.Status{domain.StatusOpen, domain.StatusInProgress, domain.StatusClosed} {
		if _, err := s.statuses.FindOrCreate(ctx, status); err != nil {
			return fmt.Errorf("ensure status %q: %w", status, err)
		}
	}
	s.log.InfoContext(ctx, "seeded statuses")
	return nil
}

// SeedSuperuser creates an operator account unless the login already exists.
func (s *Seeder) SeedSuperuser(ctx context.Context, login, email, password string) error {
	if login == "" || password == "" {
		return domain.NewValidationError("superuser", "login and password are required")
	}

	_, err := s.staff.GetByLogin(ctx, login)
	if err == nil {
		s.log.InfoContext(ctx, "superuser already exists", "login", login)
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("look up superuser: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.staff.Create(ctx, domain.StaffUser{
		ID:           uuid.New(),
		Login:        login,
		PasswordHash: string(hash),
		Email:        email,
		Role:         domain.RoleOperator,
	})
	if err != nil {
		return fmt.Errorf("create superuser: %w", err)
	}
	s.log.InfoContext(ctx, "created superuser", "login", login)
	return nil
}

// SeedAll runs every seeding step.
func (s *Seeder) SeedAll(ctx context.Context, login, email, password string) error {
	if err := s.SeedStatuses(ctx); err != nil {
		return err
	}
	if err := s.SeedQuestions(ctx); err != nil {
		return err
	}
	return s.SeedSuperuser(ctx, login, email, password)
}
