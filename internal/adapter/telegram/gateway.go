// Package telegram adapts the bot transport: it delivers logical prompts as
// Telegram messages with inline keyboards and feeds inbound updates into the
// dialog engine.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/turutin/intake-backend/internal/service/dialog"
)

// Gateway sends outbound messages. User ids are the string form of Telegram
// chat ids.
type Gateway struct {
	bot *tgbotapi.BotAPI
	log *slog.Logger
}

// NewGateway creates a gateway over an authorized bot client.
func NewGateway(log *slog.Logger, bot *tgbotapi.BotAPI) *Gateway {
	return &Gateway{bot: bot, log: log.With("component", "telegram_gateway")}
}

// Send delivers a prompt, mapping its actions to an inline keyboard with one
// button per row.
func (g *Gateway) Send(ctx context.Context, userID string, prompt dialog.Prompt) error {
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse chat id %q: %w", userID, err)
	}

	msg := tgbotapi.NewMessage(chatID, prompt.Text)
	if len(prompt.Actions) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, len(prompt.Actions))
		for i, a := range prompt.Actions {
			rows[i] = tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(a.Label, a.Token),
			)
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	if _, err := g.bot.Send(msg); err != nil {
		return fmt.Errorf("send message to %s: %w", userID, err)
	}
	return nil
}

// SendText delivers a plain text message. Used by the notifier.
func (g *Gateway) SendText(ctx context.Context, userID, text string) error {
	return g.Send(ctx, userID, dialog.Prompt{Text: text})
}
