package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/chatops-ua/workcop/internal/content"
)

const riddlesPerLevel = 5

// newRiddleRefreshTask creates the task that tops up the riddle bank with
// generated riddles. It is a no-op when the Gemini client is not configured.
func newRiddleRefreshTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "riddle_refresh")

	return func(ctx context.Context) error {
		if deps.GeminiClient == nil {
			log.InfoContext(ctx, "Gemini client not configured, skipping riddle refresh")
			return nil
		}

		log.InfoContext(ctx, "Starting scheduled riddle refresh task...")
		startTime := time.Now()

		var added, failed int
		for level := content.MinRiddleLevel; level <= content.MaxRiddleLevel; level++ {
			riddles, err := deps.GeminiClient.GenerateRiddles(ctx, level, riddlesPerLevel)
			if err != nil {
				log.WarnContext(ctx, "Riddle generation failed for level", "level", level, "error", err)
				failed++
				continue
			}
			n := deps.Bank.Extend(level, riddles)
			added += n
			log.DebugContext(ctx, "Extended riddle bank", "level", level, "generated", len(riddles), "added", n)
		}

		duration := time.Since(startTime)
		if failed == content.MaxRiddleLevel-content.MinRiddleLevel+1 {
			log.ErrorContext(ctx, "Riddle refresh failed for every level", "duration", duration)
			return fmt.Errorf("riddle refresh failed for all levels")
		}

		log.InfoContext(ctx, "Riddle refresh task completed",
			"added", added, "failed_levels", failed, "duration", duration)
		return nil
	}
}
