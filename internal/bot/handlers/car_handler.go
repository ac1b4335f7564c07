package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/content"
)

// NewCarHandler returns a handler for the /car command, which assigns the
// caller a random car from the catalog.
func NewCarHandler(deps HandlerDeps) bot.HandlerFunc {
	return carHandler{deps}.Handle
}

type carHandler struct {
	deps HandlerDeps
}

func (h carHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "car")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Car handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	car := content.RandomCar()
	text := fmt.Sprintf(
		"🎲 %s, твоя машина на сьогодні:\n\n🚗 *%s*\n🏎 %d к.с. — %s\n%s Крутість: %d/10\n\n💬 _%s_",
		displayName(update.Message.From),
		car.Name, car.HP, content.HPComment(car.HP),
		content.CoolnessEmoji(car.Coolness), car.Coolness,
		car.Comment,
	)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send car message", "error", err, "chat_id", chatID)
	}
}
