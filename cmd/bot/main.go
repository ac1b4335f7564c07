// Package main contains the entrypoint for the Telegram bot application.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/chatops-ua/workcop/internal/bot"
	"github.com/chatops-ua/workcop/internal/bot/handlers"
	"github.com/chatops-ua/workcop/internal/bot/tasks"
	"github.com/chatops-ua/workcop/internal/classifier"
	"github.com/chatops-ua/workcop/internal/config"
	"github.com/chatops-ua/workcop/internal/content"
	"github.com/chatops-ua/workcop/internal/database"
	"github.com/chatops-ua/workcop/internal/economy"
	"github.com/chatops-ua/workcop/internal/gemini"
	"github.com/chatops-ua/workcop/internal/logger"
	"github.com/chatops-ua/workcop/internal/telegram"

	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop() // Ensure context cancellation is signaled before exit
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger, db,
// classifier, economy, bot, scheduler), handles graceful shutdown, and
// returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db) // Ensure DB is closed on function exit
	store := database.NewStore(db, log)

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Error("Failed to load timezone", "timezone", cfg.Scheduler.Timezone, "error", err)
		return 1
	}

	bank := content.NewRiddleBank()
	ledger := economy.NewLedger(store, cfg.Economy.StartingBalance)
	slots := economy.NewSlotMachine(rand.New(rand.NewSource(time.Now().UnixNano())))
	riddles := economy.NewRiddleService(store, ledger, bank, economy.RiddleConfig{
		DailyBonus:       cfg.Economy.DailyBonus,
		MaxLevel:         cfg.Economy.RiddleMaxLevel,
		AttemptsPerLevel: cfg.Economy.RiddleAttemptsPerLvl,
	}, loc)

	// The Gemini client is optional: without an API key the riddle refresh
	// task is skipped and the built-in riddle bank is used as is.
	var gemClient gemini.Client
	if cfg.Gemini.APIKey != "" {
		gemClient, err = gemini.NewClient(ctx, cfg.Gemini, log)
		if err != nil {
			log.Error("Failed to initialize Gemini client", "error", err)
			return 1
		}
	} else {
		log.Info("Gemini API key not set, riddle generation disabled")
	}

	hDeps := handlers.HandlerDeps{
		Logger:     log,
		Config:     cfg,
		Store:      store,
		Classifier: classifier.New(),
		Ledger:     ledger,
		Slots:      slots,
		Riddles:    riddles,
	}
	tDeps := tasks.TaskDeps{
		Logger:       log,
		Config:       cfg,
		Store:        store,
		Ledger:       ledger,
		Bank:         bank,
		GeminiClient: gemClient,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.NewMessageHandler(hDeps)),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}
	tDeps.TgBot = tg

	me, err := tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", me.ID, "bot_username", me.Username)

	cmdHandlers := handlers.RegisterAllCommands(hDeps)
	if err := telegram.RegisterHandlers(tg, log, cmdHandlers); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}
	app := bot.NewBot(log, cfg, db, store, tg, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx) // Run blocks until context is cancelled or an error occurs
	log.Info("Bot run loop finished. Initiating shutdown...")

	// Check if the error is significant (not just context cancellation)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		// Allow logs to flush before exiting on error
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	// Allow logs to flush before exiting gracefully
	log.Info("Waiting briefly before exit...")
	time.Sleep(time.Second)
	return 0
}
