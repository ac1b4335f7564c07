package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/content"
)

// NewRoastHandler returns a handler for the /roast command. The target is the
// sender of the replied-to message, the command argument, or the caller.
func NewRoastHandler(deps HandlerDeps) bot.HandlerFunc {
	return jokeHandler{deps: deps, prefix: "🔥", pick: content.RandomRoast}.Handle
}

// NewComplimentHandler returns a handler for the /compliment command, with
// the same target resolution as /roast.
func NewComplimentHandler(deps HandlerDeps) bot.HandlerFunc {
	return jokeHandler{deps: deps, prefix: "💖", pick: content.RandomCompliment}.Handle
}

type jokeHandler struct {
	deps   HandlerDeps
	prefix string
	pick   func(name string) string
}

func (h jokeHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "joke", "prefix", h.prefix)

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Joke handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   h.prefix + " " + h.pick(targetName(update.Message)),
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send joke message", "error", err, "chat_id", chatID)
	}
}
