// Package config provides configuration loading, validation, and defaults
// for the bot. Values come from defaults, config.yaml, and BOT_* environment
// variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// TaskConfig controls one scheduled job.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"` // cron expression
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Timezone string                `mapstructure:"timezone"`
	Tasks    map[string]TaskConfig `mapstructure:"tasks"`
}

// LoggerConfig controls slog output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot token and the admin's Telegram user ID.
type TelegramConfig struct {
	Token       string `mapstructure:"token"         validate:"required"`
	AdminUserID int64  `mapstructure:"admin_user_id" validate:"required,gt=0"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// GeminiConfig configures the optional riddle-generation client. The feature
// is disabled when APIKey is empty.
type GeminiConfig struct {
	APIKey            string  `mapstructure:"api_key"`
	ModelName         string  `mapstructure:"model_name"`
	Temperature       float32 `mapstructure:"temperature"        validate:"min=0,max=2"`
	MaxRetries        int     `mapstructure:"max_retries"        validate:"min=0,max=10"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"min=0,max=300"`
}

// EconomyConfig holds the coin economy constants. The riddle cutoffs are
// configuration rather than literals so the progression can be tuned.
type EconomyConfig struct {
	StartingBalance       int64   `mapstructure:"starting_balance"         validate:"min=0"`
	DefaultBet            int64   `mapstructure:"default_bet"              validate:"min=1"`
	MinBet                int64   `mapstructure:"min_bet"                  validate:"min=1"`
	MaxBet                int64   `mapstructure:"max_bet"                  validate:"gtefield=MinBet"`
	DailyBonus            int64   `mapstructure:"daily_bonus"              validate:"min=0"`
	MidnightBonus         int64   `mapstructure:"midnight_bonus"           validate:"min=0"`
	RiddleMaxLevel        int     `mapstructure:"riddle_max_level"         validate:"min=1,max=5"`
	RiddleAttemptsPerLvl  int     `mapstructure:"riddle_attempts_per_level" validate:"min=1"`
	WorkReplyConfidence   float64 `mapstructure:"work_reply_confidence"    validate:"min=0,max=1"`
	LeaderboardSize       int     `mapstructure:"leaderboard_size"         validate:"min=1"`
}

// Config is the root application configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Economy   EconomyConfig   `mapstructure:"economy"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoadConfig reads configuration from the given YAML file (optional) and
// BOT_* environment variables, applies defaults, and validates the result.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, env vars and defaults still apply.
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", true)

	v.SetDefault("database.path", "storage.db")

	v.SetDefault("gemini.model_name", "gemini-2.0-flash")
	v.SetDefault("gemini.temperature", 1.0)
	v.SetDefault("gemini.max_retries", 2)
	v.SetDefault("gemini.retry_delay_seconds", 5)

	v.SetDefault("economy.starting_balance", 100)
	v.SetDefault("economy.default_bet", 10)
	v.SetDefault("economy.min_bet", 1)
	v.SetDefault("economy.max_bet", 1000)
	v.SetDefault("economy.daily_bonus", 50)
	v.SetDefault("economy.midnight_bonus", 100)
	v.SetDefault("economy.riddle_max_level", 5)
	v.SetDefault("economy.riddle_attempts_per_level", 5)
	v.SetDefault("economy.work_reply_confidence", 0.95)
	v.SetDefault("economy.leaderboard_size", 10)

	v.SetDefault("scheduler.timezone", "Europe/Kyiv")
	v.SetDefault("scheduler.tasks", map[string]TaskConfig{
		"daily_report":    {Enabled: true, Schedule: "0 23 * * *"},
		"midnight_bonus":  {Enabled: true, Schedule: "0 0 * * *"},
		"riddle_refresh":  {Enabled: false, Schedule: "30 4 * * *"},
		"sql_maintenance": {Enabled: true, Schedule: "15 4 * * 0"},
	})
}
