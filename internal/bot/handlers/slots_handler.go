package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/economy"
)

// NewSlotsHandler returns a handler for the /slots command.
func NewSlotsHandler(deps HandlerDeps) bot.HandlerFunc {
	return slotsHandler{deps}.Handle
}

type slotsHandler struct {
	deps HandlerDeps
}

func (h slotsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "slots")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Slots handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	econ := h.deps.Config.Economy

	send := func(text string) {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      text,
			ParseMode: models.ParseModeMarkdown,
		})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send slots message", "error", err, "chat_id", chatID)
		}
	}

	// An invalid bet is rejected outright, nothing is deducted.
	bet := econ.DefaultBet
	if args := commandArgs(update.Message.Text); args != "" {
		parsed, err := strconv.ParseInt(args, 10, 64)
		if err != nil {
			send(fmt.Sprintf("🤔 Ставка має бути числом, наприклад: /slots %d", econ.DefaultBet))
			return
		}
		if parsed < econ.MinBet || parsed > econ.MaxBet {
			send(fmt.Sprintf("🙅 Ставка має бути від %d до %d 🪙", econ.MinBet, econ.MaxBet))
			return
		}
		bet = parsed
	}

	balance, err := h.deps.Ledger.Balance(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to get balance", "error", err, "user_id", userID)
		send(genericErrorMsg)
		return
	}
	if balance < bet {
		send(fmt.Sprintf("💸 Недостатньо коінів!\n\nТвій баланс: %d 🪙\nСтавка: %d 🪙\n\n_Почекай опівнічний бонус або грай менше_", balance, bet))
		return
	}

	outcome := h.deps.Slots.Spin()
	winnings := economy.Payout(outcome, bet)

	newBalance, err := h.deps.Ledger.Adjust(ctx, userID, winnings-bet, displayName(update.Message.From))
	if err != nil {
		log.ErrorContext(ctx, "Failed to settle spin", "error", err, "user_id", userID)
		send(genericErrorMsg)
		return
	}

	log.InfoContext(ctx, "Slot spin settled",
		"user_id", userID, "bet", bet, "winnings", winnings, "new_balance", newBalance)

	send(formatSpinResult(outcome, bet, winnings, newBalance))
}

// formatSpinResult renders the spin outcome message with the reel display.
func formatSpinResult(outcome economy.Outcome, bet, winnings, newBalance int64) string {
	reels := fmt.Sprintf("╔═══════════╗\n║ %s │ %s │ %s ║\n╚═══════════╝", outcome[0], outcome[1], outcome[2])

	switch {
	case winnings > bet:
		var header, cheer string
		switch {
		case outcome[0] == economy.JackpotSymbol && outcome[1] == economy.JackpotSymbol && outcome[2] == economy.JackpotSymbol:
			header = "💎💎💎 *ДЖЕКПОТ!!!* 💎💎💎"
			cheer = "🎉🎉🎉 НЕЙМОВІРНО! 🎉🎉🎉\n\n"
		case outcome[0] == economy.MegaWinSymbol && outcome[1] == economy.MegaWinSymbol && outcome[2] == economy.MegaWinSymbol:
			header = "7️⃣7️⃣7️⃣ *MEGA WIN!* 7️⃣7️⃣7️⃣"
			cheer = "🔥🔥🔥 КРАСАВА! 🔥🔥🔥\n\n"
		default:
			header = "🎉 *ВИГРАШ!* 🎉"
		}
		return fmt.Sprintf("%s\n\n%s\n\n%sСтавка: %d 🪙\nВиграш: +%d 🪙\nБаланс: %d 🪙",
			header, reels, cheer, bet, winnings, newBalance)

	case winnings == bet:
		return fmt.Sprintf("😅 Майже! 😅\n\n%s\n\nСтавка повернута\nБаланс: %d 🪙", reels, newBalance)

	default:
		return fmt.Sprintf("😢 Не пощастило 😢\n\n%s\n\nВтрата: -%d 🪙\nБаланс: %d 🪙", reels, bet, newBalance)
	}
}
