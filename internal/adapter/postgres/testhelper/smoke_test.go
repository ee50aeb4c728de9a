package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	user := SeedUser(t, pool)

	var role string
	err := pool.QueryRow(
		context.Background(),
		`SELECT role FROM users WHERE id = $1`,
		user.ID,
	).Scan(&role)
	if err != nil {
		t.Fatalf("expected user in DB, got error: %v", err)
	}

	if role != user.Role.String() {
		t.Fatalf("expected role %q, got %q", user.Role, role)
	}
}
