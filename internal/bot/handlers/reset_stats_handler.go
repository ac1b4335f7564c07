package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewResetStatsHandler returns a handler for the admin-only /reset_stats
// command, which zeroes everyone's per-day counters ahead of schedule.
func NewResetStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return resetStatsHandler{deps}.Handle
}

type resetStatsHandler struct {
	deps HandlerDeps
}

func (h resetStatsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "reset_stats")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Reset stats handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	if err := h.deps.Store.ResetDailyStats(ctx); err != nil {
		log.ErrorContext(ctx, "Failed to reset daily stats", "error", err, "chat_id", chatID)
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: genericErrorMsg})
		return
	}

	log.InfoContext(ctx, "Daily stats reset by admin", "user_id", update.Message.From.ID)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "📊 Денну статистику скинуто",
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send reset confirmation", "error", err, "chat_id", chatID)
	}
}
