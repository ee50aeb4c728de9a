package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turutin/intake-backend/internal/adapter/postgres/application"
	"github.com/turutin/intake-backend/internal/adapter/postgres/testhelper"
	"github.com/turutin/intake-backend/internal/domain"
)

func newRepo(t *testing.T) (*application.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return application.New(pool), pool
}

func TestRepo_Create_And_GetForUpdate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	open := testhelper.SeedStatus(t, pool, domain.StatusOpen)

	answers := "1. First question?\nA long enough answer with many words.\n"
	created, err := repo.Create(ctx, u.ID, open.ID, answers)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create must return a generated id")
	}
	if created.Answers != answers {
		t.Errorf("Answers mismatch: got %q, want %q", created.Answers, answers)
	}

	got, err := repo.GetForUpdate(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetForUpdate: %v", err)
	}
	if got.Status != domain.StatusOpen {
		t.Errorf("Status mismatch: got %s, want %s", got.Status, domain.StatusOpen)
	}
	if got.UserID != u.ID {
		t.Errorf("UserID mismatch: got %s, want %s", got.UserID, u.ID)
	}
}

func TestRepo_GetForUpdate_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetForUpdate(context.Background(), 999999999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_SetStatus(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	open := testhelper.SeedStatus(t, pool, domain.StatusOpen)
	inProgress := testhelper.SeedStatus(t, pool, domain.StatusInProgress)
	app := testhelper.SeedApplication(t, pool, u.ID, open)

	if err := repo.SetStatus(ctx, app.ID, inProgress.ID); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	got, err := repo.GetForUpdate(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetForUpdate: %v", err)
	}
	if got.Status != domain.StatusInProgress {
		t.Errorf("Status mismatch: got %s, want %s", got.Status, domain.StatusInProgress)
	}
}

func TestRepo_SetComment(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	open := testhelper.SeedStatus(t, pool, domain.StatusOpen)
	app := testhelper.SeedApplication(t, pool, u.ID, open)

	if err := repo.SetComment(ctx, app.ID, "called the customer back"); err != nil {
		t.Fatalf("SetComment: %v", err)
	}

	got, err := repo.GetForUpdate(ctx, app.ID)
	if err != nil {
		t.Fatalf("GetForUpdate: %v", err)
	}
	if got.Comment == nil || *got.Comment != "called the customer back" {
		t.Errorf("Comment mismatch: got %v", got.Comment)
	}
}

func TestRepo_CountByUser_And_ListByUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	open := testhelper.SeedStatus(t, pool, domain.StatusOpen)

	first := testhelper.SeedApplication(t, pool, u.ID, open)
	second := testhelper.SeedApplication(t, pool, u.ID, open)
	testhelper.SeedApplication(t, pool, other.ID, open)

	count, err := repo.CountByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if count != 2 {
		t.Errorf("CountByUser: got %d, want 2", count)
	}

	apps, err := repo.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("ListByUser: got %d applications, want 2", len(apps))
	}
	if apps[0].ID != first.ID || apps[1].ID != second.ID {
		t.Errorf("ListByUser order: got [%d %d], want [%d %d]", apps[0].ID, apps[1].ID, first.ID, second.ID)
	}
	for _, app := range apps {
		if app.Status != domain.StatusOpen {
			t.Errorf("application %d: status %s, want %s", app.ID, app.Status, domain.StatusOpen)
		}
	}
}

func TestRepo_CountCreatedSince(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	open := testhelper.SeedStatus(t, pool, domain.StatusOpen)

	before := time.Now().UTC().Add(-time.Minute)
	testhelper.SeedApplication(t, pool, u.ID, open)

	count, err := repo.CountCreatedSince(ctx, before)
	if err != nil {
		t.Fatalf("CountCreatedSince: %v", err)
	}
	if count < 1 {
		t.Errorf("CountCreatedSince: got %d, want at least 1", count)
	}

	future := time.Now().UTC().Add(time.Minute)
	count, err = repo.CountCreatedSince(ctx, future)
	if err != nil {
		t.Fatalf("CountCreatedSince future: %v", err)
	}
	if count != 0 {
		t.Errorf("CountCreatedSince future: got %d, want 0", count)
	}
}
