package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chatops-ua/workcop/internal/content"
	"github.com/chatops-ua/workcop/internal/database"
)

// newDailyReportTask creates the evening task that hands out cars based on
// each user's share of work talk for the day, then resets the day counters.
func newDailyReportTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "daily_report")

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Starting scheduled daily report task...")
		startTime := time.Now()

		stats, err := deps.Store.DailyStats(ctx)
		if err != nil {
			log.ErrorContext(ctx, "Daily report task failed to load stats", "error", err)
			return fmt.Errorf("daily report failed: %w", err)
		}
		if len(stats) == 0 {
			log.InfoContext(ctx, "No messages counted today, skipping daily report")
			return nil
		}

		if err := broadcast(ctx, deps, log, formatDailyReport(stats)); err != nil {
			log.ErrorContext(ctx, "Daily report broadcast failed", "error", err)
			return fmt.Errorf("daily report broadcast failed: %w", err)
		}

		if err := deps.Store.ResetDailyStats(ctx); err != nil {
			log.ErrorContext(ctx, "Failed to reset daily stats after report", "error", err)
			return fmt.Errorf("daily stats reset failed: %w", err)
		}

		log.InfoContext(ctx, "Daily report task completed", "users", len(stats), "duration", time.Since(startTime))
		return nil
	}
}

// formatDailyReport renders the car hand-out. Stats arrive ordered by work
// share descending, so the biggest workaholic opens the list.
func formatDailyReport(stats []database.UserStats) string {
	var sb strings.Builder
	sb.WriteString("🚗 *ЩОДЕННИЙ РОЗПОДІЛ МАШИН* 🚗\n\nХто більше говорив про роботу — той їздить гірше 😌\n\n")

	for _, s := range stats {
		total := s.WorkDaily + s.PersonalDaily
		if total == 0 {
			continue
		}
		name := s.DisplayName
		if name == "" {
			name = "Анонім"
		}
		workPct := float64(s.WorkDaily) / float64(total) * 100
		car := content.CarForWorkShare(workPct)

		fmt.Fprintf(&sb, "👤 *%s* — 💼 %.0f%% (%d/%d)\n%s %s, %d к.с.\n💬 _%s_\n\n",
			name, workPct, s.WorkDaily, total,
			content.CoolnessEmoji(car.Coolness), car.Name, car.HP, car.Comment)
	}

	sb.WriteString("Завтра новий день, нові машини 🏁")
	return sb.String()
}
