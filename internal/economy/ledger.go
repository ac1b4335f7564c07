package economy

import (
	"context"
	"fmt"

	"github.com/chatops-ua/workcop/internal/database"
)

// BalanceStore is the slice of the data layer the ledger needs.
type BalanceStore interface {
	GetBalance(ctx context.Context, userID int64, startingBalance int64) (*database.Balance, error)
	AdjustBalance(ctx context.Context, userID int64, delta int64, displayName string, startingBalance int64) (int64, error)
	TopBalances(ctx context.Context, limit int) ([]database.Balance, error)
	CreditAllBalances(ctx context.Context, amount int64) (int64, error)
}

// Ledger owns coin balances. Accounts are created lazily with the configured
// starting balance on first access.
type Ledger struct {
	store    BalanceStore
	starting int64
}

// NewLedger returns a ledger backed by store.
func NewLedger(store BalanceStore, startingBalance int64) *Ledger {
	return &Ledger{store: store, starting: startingBalance}
}

// Balance returns the user's coin balance, creating the account if needed.
func (l *Ledger) Balance(ctx context.Context, userID int64) (int64, error) {
	b, err := l.store.GetBalance(ctx, userID, l.starting)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for user %d: %w", userID, err)
	}
	return b.Coins, nil
}

// Adjust applies delta to the user's balance in one atomic step and returns
// the new balance. displayName refreshes the stored name when non-empty.
func (l *Ledger) Adjust(ctx context.Context, userID int64, delta int64, displayName string) (int64, error) {
	newBalance, err := l.store.AdjustBalance(ctx, userID, delta, displayName, l.starting)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for user %d: %w", userID, err)
	}
	return newBalance, nil
}

// Top returns the highest balances for the leaderboard.
func (l *Ledger) Top(ctx context.Context, limit int) ([]database.Balance, error) {
	balances, err := l.store.TopBalances(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return balances, nil
}

// CreditAll adds amount to every existing balance and returns how many
// accounts were credited.
func (l *Ledger) CreditAll(ctx context.Context, amount int64) (int64, error) {
	n, err := l.store.CreditAllBalances(ctx, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to credit all balances: %w", err)
	}
	return n, nil
}
