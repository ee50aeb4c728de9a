// Command admin-api runs the staff HTTP API: login, application listing,
// status and comment updates, audit trails, user blocking, and stats.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/turutin/intake-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunAdminAPI(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("admin-api: %v", err)
	}
}
