package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewCheckHandler returns a handler for the /check command, which classifies
// the given text without recording statistics.
func NewCheckHandler(deps HandlerDeps) bot.HandlerFunc {
	return checkHandler{deps}.Handle
}

type checkHandler struct {
	deps HandlerDeps
}

func (h checkHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "check")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Check handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	text := commandArgs(update.Message.Text)
	if text == "" {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Використання: /check <текст>",
		})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send usage message", "error", err, "chat_id", chatID)
		}
		return
	}

	pred := h.deps.Classifier.Predict(text)
	emoji := "😎"
	if pred.IsWork {
		emoji = "💼"
	}

	reply := fmt.Sprintf("%s %s\nВпевненість: %.0f%%", emoji, strings.ToUpper(pred.Label), pred.Confidence*100)
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: reply})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send classification result", "error", err, "chat_id", chatID)
	}
}
