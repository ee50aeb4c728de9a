package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turutin/intake-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a customer with contact details filled in.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	name := "Test User " + suffix
	email := "user-" + suffix + "@example.com"
	phone := "+79990000000"
	user := domain.User{
		ID:    "tg-" + suffix,
		Name:  name,
		Email: &email,
		Phone: &phone,
		Role:  domain.RoleCustomer,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (id, name, email, phone, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		user.ID, user.Name, user.Email, user.Phone, user.Role.String(),
	).Scan(&user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedQuestions creates n questions numbered from 1. Returns them in order.
func SeedQuestions(t *testing.T, pool *pgxpool.Pool, n int) []domain.Question {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	questions := make([]domain.Question, n)
	for i := 0; i < n; i++ {
		q := domain.Question{
			Number: i + 1,
			Prompt: fmt.Sprintf("Question %d (%s)?", i+1, suffix),
		}

		err := pool.QueryRow(ctx,
			`INSERT INTO questions (number, prompt) VALUES ($1, $2)
			 ON CONFLICT (number) DO UPDATE SET prompt = EXCLUDED.prompt
			 RETURNING id`,
			q.Number, q.Prompt,
		).Scan(&q.ID)
		if err != nil {
			t.Fatalf("testhelper: SeedQuestions insert question %d: %v", i+1, err)
		}
		questions[i] = q
	}

	return questions
}

// SeedStatus ensures a status row exists and returns it.
func SeedStatus(t *testing.T, pool *pgxpool.Pool, name domain.Status) domain.StatusRecord {
	t.Helper()
	ctx := context.Background()

	record := domain.StatusRecord{Name: name}
	err := pool.QueryRow(ctx,
		`INSERT INTO statuses (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name.String(),
	).Scan(&record.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedStatus insert status: %v", err)
	}

	return record
}

// SeedApplication creates an application for the user in the given status.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, userID string, status domain.StatusRecord) domain.Application {
	t.Helper()
	ctx := context.Background()

	app := domain.Application{
		UserID:   userID,
		StatusID: status.ID,
		Status:   status.Name,
		Answers:  "1. Question one?\nAnswer one with enough words here.\n",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, status_id, answers)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		app.UserID, app.StatusID, app.Answers,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication insert application: %v", err)
	}

	return app
}

// SeedStaff creates a staff account with a throwaway password hash.
func SeedStaff(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.StaffUser {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.StaffUser{
		ID:           uuid.New(),
		Login:        "staff-" + suffix,
		PasswordHash: "$2a$10$invalidhashforseedonly000000000000000000000000000000",
		Email:        "staff-" + suffix + "@example.com",
		Role:         role,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO staff_users (id, login, password_hash, email, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Login, user.PasswordHash, user.Email, user.Role.String(), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStaff insert staff user: %v", err)
	}

	return user
}
