// Package app wires configuration, storage, services, and transports into
// runnable processes: the Telegram bot, the admin API, and the outbox
// notifier.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turutin/intake-backend/internal/adapter/postgres"
	"github.com/turutin/intake-backend/internal/config"
)

// bootstrap loads configuration, builds the logger, and connects to the
// database. Every process entry point starts here.
func bootstrap(ctx context.Context, process string) (*config.Config, *slog.Logger, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log).With("process", process)

	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return cfg, logger, pool, nil
}
