package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for database operations. Every mutation runs
// inside its own transaction, so handlers never observe half-applied state.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// GetBalance returns a user's coin balance, creating the account with
	// the given starting balance on first reference.
	GetBalance(ctx context.Context, userID int64, startingBalance int64) (*Balance, error)

	// AdjustBalance applies a signed delta to a user's balance atomically,
	// creating the account at startingBalance first if needed. A non-empty
	// displayName refreshes the stored name. Returns the new total.
	AdjustBalance(ctx context.Context, userID int64, delta int64, displayName string, startingBalance int64) (int64, error)

	// TopBalances returns up to limit accounts ordered by coins descending.
	TopBalances(ctx context.Context, limit int) ([]Balance, error)

	// CreditAllBalances adds amount to every known account in a single
	// statement and returns the number of accounts credited.
	CreditAllBalances(ctx context.Context, amount int64) (int64, error)

	// GetBonusClaim returns a user's bonus claim record. Nil, nil if none.
	GetBonusClaim(ctx context.Context, userID int64) (*BonusClaim, error)

	// SaveBonusClaim inserts or replaces a user's bonus claim record.
	SaveBonusClaim(ctx context.Context, claim *BonusClaim) error

	// GetActiveRiddle returns a user's pending riddle. Nil, nil if none.
	GetActiveRiddle(ctx context.Context, userID int64) (*ActiveRiddle, error)

	// SaveActiveRiddle inserts or replaces a user's pending riddle.
	SaveActiveRiddle(ctx context.Context, riddle *ActiveRiddle) error

	// DeleteActiveRiddle removes a user's pending riddle, if any.
	DeleteActiveRiddle(ctx context.Context, userID int64) error

	// RecordClassification increments a user's cumulative and daily counters
	// for one classified message in a single transaction.
	RecordClassification(ctx context.Context, userID int64, displayName string, isWork bool) error

	// AllStats returns all tracked users ordered by total message count.
	AllStats(ctx context.Context) ([]UserStats, error)

	// DailyStats returns users with at least one message counted today.
	DailyStats(ctx context.Context) ([]UserStats, error)

	// ResetDailyStats zeroes the per-day counters for all users.
	ResetDailyStats(ctx context.Context) error

	// SetMuted adds or removes a user from the tracking opt-out set.
	SetMuted(ctx context.Context, userID int64, muted bool) error

	// IsMuted reports whether a user has opted out of tracking.
	IsMuted(ctx context.Context, userID int64) (bool, error)

	// AddChat records a chat the bot has seen, for scheduled broadcasts.
	AddChat(ctx context.Context, chatID int64) error

	// Chats returns all known chat IDs.
	Chats(ctx context.Context) ([]int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// inTx runs fn inside a transaction, rolling back on error.
func (s *sqlxStore) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil
	return nil
}

func (s *sqlxStore) GetBalance(ctx context.Context, userID int64, startingBalance int64) (*Balance, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id cannot be zero")
	}

	var balance Balance
	err := s.db.GetContext(ctx, &balance,
		`SELECT user_id, coins, display_name, created_at, updated_at FROM balances WHERE user_id = ?`, userID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First reference: create the account lazily.
		now := time.Now().UTC()
		balance = Balance{UserID: userID, Coins: startingBalance, CreatedAt: now, UpdatedAt: now}
		err = s.inTx(ctx, func(tx *sqlx.Tx) error {
			_, execErr := tx.NamedExecContext(ctx, `
				INSERT INTO balances (user_id, coins, display_name, created_at, updated_at)
				VALUES (:user_id, :coins, :display_name, :created_at, :updated_at)
				ON CONFLICT (user_id) DO NOTHING`, &balance)
			return execErr
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "Error creating balance", "user_id", userID, "error", err)
			return nil, fmt.Errorf("failed to create balance for user %d: %w", userID, err)
		}
		s.logger.DebugContext(ctx, "Created balance with starting amount", "user_id", userID, "coins", startingBalance)
		return &balance, nil

	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting balance", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get balance for user %d: %w", userID, err)
	}

	return &balance, nil
}

func (s *sqlxStore) AdjustBalance(ctx context.Context, userID int64, delta int64, displayName string, startingBalance int64) (int64, error) {
	if userID == 0 {
		return 0, fmt.Errorf("user_id cannot be zero")
	}

	var newTotal int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		now := time.Now().UTC()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO balances (user_id, coins, display_name, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (user_id) DO UPDATE SET
				coins = coins + excluded.coins - ?,
				display_name = CASE WHEN excluded.display_name != '' THEN excluded.display_name ELSE display_name END,
				updated_at = excluded.updated_at`,
			userID, startingBalance+delta, displayName, now, now, startingBalance)
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &newTotal, `SELECT coins FROM balances WHERE user_id = ?`, userID)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error adjusting balance", "user_id", userID, "delta", delta, "error", err)
		return 0, fmt.Errorf("failed to adjust balance for user %d: %w", userID, err)
	}

	s.logger.DebugContext(ctx, "Balance adjusted", "user_id", userID, "delta", delta, "new_total", newTotal)
	return newTotal, nil
}

func (s *sqlxStore) TopBalances(ctx context.Context, limit int) ([]Balance, error) {
	if limit <= 0 {
		limit = 10
	}

	var balances []Balance
	err := s.db.SelectContext(ctx, &balances, `
		SELECT user_id, coins, display_name, created_at, updated_at
		FROM balances
		ORDER BY coins DESC, user_id ASC
		LIMIT ?`, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error getting top balances", "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to get top balances: %w", err)
	}
	return balances, nil
}

func (s *sqlxStore) CreditAllBalances(ctx context.Context, amount int64) (int64, error) {
	var credited int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE balances SET coins = coins + ?, updated_at = ?`, amount, time.Now().UTC())
		if err != nil {
			return err
		}
		credited, err = result.RowsAffected()
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error crediting all balances", "amount", amount, "error", err)
		return 0, fmt.Errorf("failed to credit all balances: %w", err)
	}

	s.logger.InfoContext(ctx, "Credited all balances", "amount", amount, "accounts", credited)
	return credited, nil
}

func (s *sqlxStore) GetBonusClaim(ctx context.Context, userID int64) (*BonusClaim, error) {
	var claim BonusClaim
	err := s.db.GetContext(ctx, &claim,
		`SELECT user_id, claim_date, attempts, updated_at FROM bonus_claims WHERE user_id = ?`, userID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting bonus claim", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get bonus claim for user %d: %w", userID, err)
	}
	return &claim, nil
}

func (s *sqlxStore) SaveBonusClaim(ctx context.Context, claim *BonusClaim) error {
	if claim == nil {
		return fmt.Errorf("cannot save nil bonus claim")
	}
	claim.UpdatedAt = time.Now().UTC()

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO bonus_claims (user_id, claim_date, attempts, updated_at)
			VALUES (:user_id, :claim_date, :attempts, :updated_at)
			ON CONFLICT (user_id) DO UPDATE SET
				claim_date = excluded.claim_date,
				attempts = excluded.attempts,
				updated_at = excluded.updated_at`, claim)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving bonus claim", "user_id", claim.UserID, "error", err)
		return fmt.Errorf("failed to save bonus claim for user %d: %w", claim.UserID, err)
	}
	return nil
}

func (s *sqlxStore) GetActiveRiddle(ctx context.Context, userID int64) (*ActiveRiddle, error) {
	var riddle ActiveRiddle
	err := s.db.GetContext(ctx, &riddle,
		`SELECT user_id, question, answers, level, created_at FROM active_riddles WHERE user_id = ?`, userID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting active riddle", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get active riddle for user %d: %w", userID, err)
	}
	return &riddle, nil
}

func (s *sqlxStore) SaveActiveRiddle(ctx context.Context, riddle *ActiveRiddle) error {
	if riddle == nil {
		return fmt.Errorf("cannot save nil riddle")
	}
	if riddle.CreatedAt.IsZero() {
		riddle.CreatedAt = time.Now().UTC()
	}

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO active_riddles (user_id, question, answers, level, created_at)
			VALUES (:user_id, :question, :answers, :level, :created_at)
			ON CONFLICT (user_id) DO UPDATE SET
				question = excluded.question,
				answers = excluded.answers,
				level = excluded.level,
				created_at = excluded.created_at`, riddle)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving active riddle", "user_id", riddle.UserID, "error", err)
		return fmt.Errorf("failed to save active riddle for user %d: %w", riddle.UserID, err)
	}
	return nil
}

func (s *sqlxStore) DeleteActiveRiddle(ctx context.Context, userID int64) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM active_riddles WHERE user_id = ?`, userID)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error deleting active riddle", "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete active riddle for user %d: %w", userID, err)
	}
	return nil
}

func (s *sqlxStore) RecordClassification(ctx context.Context, userID int64, displayName string, isWork bool) error {
	if userID == 0 {
		return fmt.Errorf("user_id cannot be zero")
	}

	workInc := 0
	personalInc := 0
	if isWork {
		workInc = 1
	} else {
		personalInc = 1
	}

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_stats (user_id, display_name, work_total, personal_total, work_daily, personal_daily, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id) DO UPDATE SET
				display_name = CASE WHEN excluded.display_name != '' THEN excluded.display_name ELSE display_name END,
				work_total = work_total + excluded.work_total,
				personal_total = personal_total + excluded.personal_total,
				work_daily = work_daily + excluded.work_daily,
				personal_daily = personal_daily + excluded.personal_daily,
				updated_at = excluded.updated_at`,
			userID, displayName, workInc, personalInc, workInc, personalInc, time.Now().UTC())
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error recording classification", "user_id", userID, "is_work", isWork, "error", err)
		return fmt.Errorf("failed to record classification for user %d: %w", userID, err)
	}
	return nil
}

func (s *sqlxStore) AllStats(ctx context.Context) ([]UserStats, error) {
	var stats []UserStats
	err := s.db.SelectContext(ctx, &stats, `
		SELECT user_id, display_name, work_total, personal_total, work_daily, personal_daily, updated_at
		FROM user_stats
		ORDER BY work_total + personal_total DESC`)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error getting all stats", "error", err)
		return nil, fmt.Errorf("failed to get all stats: %w", err)
	}
	return stats, nil
}

func (s *sqlxStore) DailyStats(ctx context.Context) ([]UserStats, error) {
	var stats []UserStats
	err := s.db.SelectContext(ctx, &stats, `
		SELECT user_id, display_name, work_total, personal_total, work_daily, personal_daily, updated_at
		FROM user_stats
		WHERE work_daily + personal_daily > 0
		ORDER BY CAST(work_daily AS REAL) / (work_daily + personal_daily) DESC`)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error getting daily stats", "error", err)
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	return stats, nil
}

func (s *sqlxStore) ResetDailyStats(ctx context.Context) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`UPDATE user_stats SET work_daily = 0, personal_daily = 0, updated_at = ? WHERE work_daily + personal_daily > 0`,
			time.Now().UTC())
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error resetting daily stats", "error", err)
		return fmt.Errorf("failed to reset daily stats: %w", err)
	}

	s.logger.InfoContext(ctx, "Daily stats reset")
	return nil
}

func (s *sqlxStore) SetMuted(ctx context.Context, userID int64, muted bool) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if muted {
			_, err = tx.ExecContext(ctx, `INSERT INTO muted_users (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, userID)
		} else {
			_, err = tx.ExecContext(ctx, `DELETE FROM muted_users WHERE user_id = ?`, userID)
		}
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error updating muted set", "user_id", userID, "muted", muted, "error", err)
		return fmt.Errorf("failed to update muted set for user %d: %w", userID, err)
	}
	return nil
}

func (s *sqlxStore) IsMuted(ctx context.Context, userID int64) (bool, error) {
	var muted bool
	err := s.db.GetContext(ctx, &muted, `SELECT 1 FROM muted_users WHERE user_id = ? LIMIT 1`, userID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "Error checking muted set", "user_id", userID, "error", err)
		return false, fmt.Errorf("failed to check muted set for user %d: %w", userID, err)
	}
	return muted, nil
}

func (s *sqlxStore) AddChat(ctx context.Context, chatID int64) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO chats (chat_id) VALUES (?) ON CONFLICT (chat_id) DO NOTHING`, chatID)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error adding chat", "chat_id", chatID, "error", err)
		return fmt.Errorf("failed to add chat %d: %w", chatID, err)
	}
	return nil
}

func (s *sqlxStore) Chats(ctx context.Context) ([]int64, error) {
	var chats []int64
	err := s.db.SelectContext(ctx, &chats, `SELECT chat_id FROM chats ORDER BY chat_id`)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error getting chats", "error", err)
		return nil, fmt.Errorf("failed to get chats: %w", err)
	}
	return chats, nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite.
	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)
	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	return nil
}
