package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/turutin/intake-backend/internal/service/dialog"
)

type dialogService interface {
	Greet(ctx context.Context, user dialog.UserRef) error
	Start(ctx context.Context, user dialog.UserRef) error
	Reset(ctx context.Context, user dialog.UserRef) error
	MyProfile(ctx context.Context, user dialog.UserRef) error
	MyApplications(ctx context.Context, user dialog.UserRef) error
	HandleText(ctx context.Context, user dialog.UserRef, text string) error
	HandleCallback(ctx context.Context, user dialog.UserRef, token string) error
}

// Listener long-polls Telegram for updates and routes them into the dialog
// engine. Events for the same chat run in arrival order through the
// dispatcher; different chats proceed concurrently.
type Listener struct {
	bot        *tgbotapi.BotAPI
	dialog     dialogService
	dispatcher *dialog.Dispatcher
	timeout    int
	log        *slog.Logger
}

// NewListener creates a listener. timeout is the long-poll timeout in seconds.
func NewListener(
	log *slog.Logger,
	bot *tgbotapi.BotAPI,
	dialogService dialogService,
	dispatcher *dialog.Dispatcher,
	timeout int,
) *Listener {
	return &Listener{
		bot:        bot,
		dialog:     dialogService,
		dispatcher: dispatcher,
		timeout:    timeout,
		log:        log.With("component", "telegram_listener"),
	}
}

// Run consumes updates until the context is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = l.timeout
	updates := l.bot.GetUpdatesChan(cfg)

	l.log.InfoContext(ctx, "listening for updates", "bot", l.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			l.bot.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			l.route(ctx, upd)
		}
	}
}

func (l *Listener) route(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		l.routeMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		l.routeCallback(ctx, upd.CallbackQuery)
	}
}

func (l *Listener) routeMessage(ctx context.Context, msg *tgbotapi.Message) {
	user := dialog.UserRef{
		ID:   strconv.FormatInt(msg.Chat.ID, 10),
		Name: senderName(msg.From),
	}

	var handle func(ctx context.Context) error
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			handle = func(ctx context.Context) error { return l.dialog.Greet(ctx, user) }
		case "apply":
			handle = func(ctx context.Context) error { return l.dialog.Start(ctx, user) }
		case "reset", "cancel":
			handle = func(ctx context.Context) error { return l.dialog.Reset(ctx, user) }
		case "profile":
			handle = func(ctx context.Context) error { return l.dialog.MyProfile(ctx, user) }
		case "applications":
			handle = func(ctx context.Context) error { return l.dialog.MyApplications(ctx, user) }
		default:
			l.log.DebugContext(ctx, "unknown command ignored", "command", msg.Command(), "user_id", user.ID)
			return
		}
	} else {
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			return
		}
		handle = func(ctx context.Context) error { return l.dialog.HandleText(ctx, user, text) }
	}

	l.dispatcher.Submit(user.ID, func() {
		if err := handle(ctx); err != nil {
			l.log.ErrorContext(ctx, "handle message", "user_id", user.ID, "error", err)
		}
	})
}

// senderName assembles the display name Telegram attached to the update.
// Falls back to the username when the profile carries no first name.
func senderName(from *tgbotapi.User) string {
	if from == nil {
		return ""
	}
	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if name == "" {
		name = from.UserName
	}
	return name
}

func (l *Listener) routeCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	user := dialog.UserRef{
		ID:   strconv.FormatInt(cb.Message.Chat.ID, 10),
		Name: senderName(cb.From),
	}
	token := cb.Data

	// Acknowledge immediately so the client stops its spinner even if the
	// handler takes a while.
	if _, err := l.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		l.log.WarnContext(ctx, "answer callback query", "user_id", user.ID, "error", err)
	}

	l.dispatcher.Submit(user.ID, func() {
		if err := l.dialog.HandleCallback(ctx, user, token); err != nil {
			l.log.ErrorContext(ctx, "handle callback", "user_id", user.ID, "token", token, "error", err)
		}
	})
}
