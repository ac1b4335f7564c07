package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	mutedMsg = `🔇 Трекінг вимкнено. Я більше не буду:
• відстежувати твої повідомлення
• підколювати за робочі теми

/unmute щоб увімкнути назад`

	unmutedMsg = "🔊 Трекінг увімкнено! Тепер я знову слідкую за тобою 👀"
)

// NewMuteHandler returns a handler for the /mute command.
func NewMuteHandler(deps HandlerDeps) bot.HandlerFunc {
	return muteHandler{deps: deps, mute: true}.Handle
}

// NewUnmuteHandler returns a handler for the /unmute command.
func NewUnmuteHandler(deps HandlerDeps) bot.HandlerFunc {
	return muteHandler{deps: deps, mute: false}.Handle
}

type muteHandler struct {
	deps HandlerDeps
	mute bool
}

func (h muteHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "mute", "mute", h.mute)

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Mute handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if err := h.deps.Store.SetMuted(ctx, userID, h.mute); err != nil {
		log.ErrorContext(ctx, "Failed to update muted set", "error", err, "user_id", userID)
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: genericErrorMsg})
		return
	}

	text := unmutedMsg
	if h.mute {
		text = mutedMsg
	}
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send mute confirmation", "error", err, "chat_id", chatID)
	}
}
