package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/turutin/intake-backend/internal/adapter/postgres"
	outboxrepo "github.com/turutin/intake-backend/internal/adapter/postgres/outbox"
	"github.com/turutin/intake-backend/internal/adapter/telegram"
	"github.com/turutin/intake-backend/internal/service/notifier"
)

// RunNotifier starts the outbox delivery worker and blocks until the
// context is cancelled.
func RunNotifier(ctx context.Context) error {
	cfg, logger, pool, err := bootstrap(ctx, "notifier")
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := cfg.RequireBot(); err != nil {
		return err
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("create bot client: %w", err)
	}

	worker := notifier.NewWorker(
		logger,
		outboxrepo.New(pool),
		telegram.NewGateway(logger, botAPI),
		postgres.NewTxManager(pool),
		cfg.Notifier,
	)

	return worker.Run(ctx)
}
