// Command cleanup-outbox removes delivered and failed outbox rows older
// than the configured retention period. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/turutin/intake-backend/internal/adapter/postgres"
	outboxrepo "github.com/turutin/intake-backend/internal/adapter/postgres/outbox"
	"github.com/turutin/intake-backend/internal/app"
	"github.com/turutin/intake-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cutoff := time.Now().UTC().Add(-cfg.Notifier.Retention)

	deleted, err := outboxrepo.New(pool).DeleteFinished(ctx, cutoff)
	if err != nil {
		logger.Error("outbox cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("outbox cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
