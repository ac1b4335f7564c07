package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/database"
)

// NewTopHandler returns a handler for the /top command.
func NewTopHandler(deps HandlerDeps) bot.HandlerFunc {
	return topHandler{deps}.Handle
}

type topHandler struct {
	deps HandlerDeps
}

func (h topHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "top")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Top handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	top, err := h.deps.Ledger.Top(ctx, h.deps.Config.Economy.LeaderboardSize)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load leaderboard", "error", err, "chat_id", chatID)
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: genericErrorMsg})
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      formatLeaderboard(top),
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send leaderboard", "error", err, "chat_id", chatID)
	}
}

// formatLeaderboard renders the casino leaderboard with medals for the
// top three places.
func formatLeaderboard(top []database.Balance) string {
	if len(top) == 0 {
		return "🎰 Ще немає гравців! Будь першим: /slots"
	}

	var sb strings.Builder
	sb.WriteString("🏆 *ЛІДЕРБОРД КАЗИНО* 🏆\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, entry := range top {
		place := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			place = medals[i]
		}
		name := entry.DisplayName
		if name == "" {
			name = anonymousName
		}
		fmt.Fprintf(&sb, "%s %s — %d 🪙\n", place, name, entry.Coins)
	}

	return sb.String()
}
