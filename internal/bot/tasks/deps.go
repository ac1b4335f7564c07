// Package tasks implements the scheduled jobs of the bot: the daily car
// report, the midnight bonus, riddle bank refresh, and database maintenance.
package tasks

import (
	"context"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/config"
	"github.com/chatops-ua/workcop/internal/content"
	"github.com/chatops-ua/workcop/internal/database"
	"github.com/chatops-ua/workcop/internal/economy"
	"github.com/chatops-ua/workcop/internal/gemini"
)

// TaskDeps contains all dependencies required by scheduled tasks.
// TgBot is set after the Telegram bot is constructed. GeminiClient may be
// nil, which disables riddle generation.
type TaskDeps struct {
	Logger       *slog.Logger
	Config       *config.Config
	Store        database.Store
	Ledger       *economy.Ledger
	Bank         *content.RiddleBank
	GeminiClient gemini.Client
	TgBot        *tgbot.Bot
}

// broadcast sends text to every chat the bot has seen. Per-chat send
// failures are logged and skipped so one dead chat does not block the rest.
func broadcast(ctx context.Context, deps TaskDeps, log *slog.Logger, text string) error {
	chats, err := deps.Store.Chats(ctx)
	if err != nil {
		return err
	}

	for _, chatID := range chats {
		_, err := deps.TgBot.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID:    chatID,
			Text:      text,
			ParseMode: models.ParseModeMarkdown,
		})
		if err != nil {
			log.WarnContext(ctx, "Failed to send broadcast to chat", "chat_id", chatID, "error", err)
		}
	}
	return nil
}
