package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/turutin/intake-backend/internal/adapter/postgres"
	applicationrepo "github.com/turutin/intake-backend/internal/adapter/postgres/application"
	questionrepo "github.com/turutin/intake-backend/internal/adapter/postgres/question"
	staffrepo "github.com/turutin/intake-backend/internal/adapter/postgres/staff"
	statusrepo "github.com/turutin/intake-backend/internal/adapter/postgres/status"
	userrepo "github.com/turutin/intake-backend/internal/adapter/postgres/user"
	"github.com/turutin/intake-backend/internal/adapter/telegram"
	"github.com/turutin/intake-backend/internal/service/dialog"
)

// RunBot starts the Telegram bot process and blocks until the context is
// cancelled.
func RunBot(ctx context.Context) error {
	cfg, logger, pool, err := bootstrap(ctx, "bot")
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
	botAPI.Debug = cfg.Bot.Debug

	gateway := telegram.NewGateway(logger, botAPI)

	sessions := dialog.NewStore(logger, cfg.Dialog.SessionTTL)
	go sessions.RunJanitor(ctx, cfg.Dialog.JanitorInterval)

	dialogService := dialog.NewService(
		logger,
		userrepo.New(pool),
		questionrepo.New(pool),
		statusrepo.New(pool),
		applicationrepo.New(pool),
		staffrepo.New(pool),
		gateway,
		postgres.NewTxManager(pool),
		sessions,
	)

	dispatcher := dialog.NewDispatcher()
	defer dispatcher.Close()

	listener := telegram.NewListener(logger, botAPI, dialogService, dispatcher, cfg.Bot.PollTimeout)
	if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("listener: %w", err)
	}
	return nil
}
