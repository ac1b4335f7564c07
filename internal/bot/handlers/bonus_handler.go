package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/economy"
)

// NewBonusHandler returns a handler for the /bonus command. The first call of
// the day pays the free bonus, further calls hand out riddles of increasing
// difficulty.
func NewBonusHandler(deps HandlerDeps) bot.HandlerFunc {
	return bonusHandler{deps}.Handle
}

type bonusHandler struct {
	deps HandlerDeps
}

func (h bonusHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "bonus")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Bonus handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	res, err := h.deps.Riddles.ClaimBonus(ctx, userID, displayName(update.Message.From))
	if err != nil {
		log.ErrorContext(ctx, "Failed to process bonus claim", "error", err, "user_id", userID)
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: genericErrorMsg})
		return
	}

	log.InfoContext(ctx, "Bonus claim processed", "user_id", userID, "outcome", res.Outcome)

	var text string
	switch res.Outcome {
	case economy.ClaimFreeBonus:
		text = fmt.Sprintf("🎁 *Щоденний бонус!*\n\n+%d 🪙\nБаланс: %d 🪙\n\n_Хочеш ще? Напиши /bonus і отримай загадку!_",
			res.Bonus, res.NewBalance)
	case economy.ClaimRiddlePending:
		text = fmt.Sprintf("🧩 *У тебе вже є загадка!*\n\nРівень: %s\n❓ %s\n💰 Нагорода: %d 🪙\n\n_Напиши відповідь в чат!_",
			res.LevelName, res.Question, res.Reward)
	case economy.ClaimRiddleIssued:
		text = fmt.Sprintf("🧩 *Загадка #%d*\n\nРівень: %s\n❓ %s\n💰 Нагорода: %d 🪙\n\n_Напиши відповідь в чат!_",
			res.Number, res.LevelName, res.Question, res.Reward)
	case economy.ClaimExhausted:
		text = "😴 На сьогодні загадки скінчились. Повертайся завтра!"
	default:
		log.ErrorContext(ctx, "Unknown claim outcome", "outcome", res.Outcome)
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send bonus message", "error", err, "chat_id", chatID)
	}
}
