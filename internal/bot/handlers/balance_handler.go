package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewBalanceHandler returns a handler for the /balance command.
func NewBalanceHandler(deps HandlerDeps) bot.HandlerFunc {
	return balanceHandler{deps}.Handle
}

type balanceHandler struct {
	deps HandlerDeps
}

func (h balanceHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "balance")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Balance handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	balance, err := h.deps.Ledger.Balance(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to get balance", "error", err, "user_id", userID)
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: genericErrorMsg})
		return
	}

	text := fmt.Sprintf("💰 *Баланс %s*\n\n🪙 %d коінів\n\n_/slots <ставка> - грати (за замовчуванням %d)_",
		displayName(update.Message.From), balance, h.deps.Config.Economy.DefaultBet)

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send balance message", "error", err, "chat_id", chatID)
	}
}
