package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/database"
)

// NewStatsHandler returns a handler for the /stats command.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return statsHandler{deps}.Handle
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stats")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Stats handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	stats, err := h.deps.Store.AllStats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load stats", "error", err, "chat_id", chatID)
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: genericErrorMsg})
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      formatStatsReport(stats),
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send stats", "error", err, "chat_id", chatID)
	}
}

// formatStatsReport renders the all-time classification statistics.
func formatStatsReport(stats []database.UserStats) string {
	if len(stats) == 0 {
		return "📊 Ще немає статистики. Напишіть щось!"
	}

	var sb strings.Builder
	sb.WriteString("📊 *Статистика чату*\n\n")

	var workSum, totalSum int64
	for _, s := range stats {
		total := s.WorkTotal + s.PersonalTotal
		if total == 0 {
			continue
		}
		workSum += s.WorkTotal
		totalSum += total

		name := s.DisplayName
		if name == "" {
			name = anonymousName
		}
		workPct := float64(s.WorkTotal) / float64(total) * 100
		fmt.Fprintf(&sb, "👤 %s: %d повідомлень (💼 %.0f%%)\n", name, total, workPct)
	}

	if totalSum > 0 {
		workPct := float64(workSum) / float64(totalSum) * 100
		fmt.Fprintf(&sb, "\n📈 Загалом: %d\n💼 Робота: %d (%.0f%%)\n😎 Персональне: %d (%.0f%%)",
			totalSum, workSum, workPct, totalSum-workSum, 100-workPct)
	}

	return sb.String()
}
