package tasks

import (
	"context"
	"fmt"
	"time"
)

// newMidnightBonusTask creates the midnight task that credits every account
// and announces it in all known chats.
func newMidnightBonusTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "midnight_bonus")

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Starting scheduled midnight bonus task...")
		startTime := time.Now()

		amount := deps.Config.Economy.MidnightBonus
		credited, err := deps.Ledger.CreditAll(ctx, amount)
		if err != nil {
			log.ErrorContext(ctx, "Midnight bonus task failed", "error", err)
			return fmt.Errorf("midnight bonus failed: %w", err)
		}
		if credited == 0 {
			log.InfoContext(ctx, "No accounts to credit, skipping midnight bonus broadcast")
			return nil
		}

		text := fmt.Sprintf("🌙 *Опівнічний бонус!*\n\nУсім гравцям нараховано +%d 🪙\n\nПеревір баланс: /balance", amount)
		if err := broadcast(ctx, deps, log, text); err != nil {
			log.ErrorContext(ctx, "Midnight bonus broadcast failed", "error", err)
			return fmt.Errorf("midnight bonus broadcast failed: %w", err)
		}

		log.InfoContext(ctx, "Midnight bonus task completed",
			"amount", amount, "accounts", credited, "duration", time.Since(startTime))
		return nil
	}
}
