package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/chatops-ua/workcop/internal/database"
)

func newTestStore(t *testing.T) database.Store {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	return database.NewStore(db, nil)
}

func TestBalanceLifecycle(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	balance, err := store.GetBalance(ctx, 1, 100)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.Coins != 100 {
		t.Errorf("new account has %d coins, want 100", balance.Coins)
	}

	total, err := store.AdjustBalance(ctx, 1, -30, "Оля", 100)
	if err != nil {
		t.Fatalf("AdjustBalance: %v", err)
	}
	if total != 70 {
		t.Errorf("balance after -30 is %d, want 70", total)
	}

	// Adjusting an unknown user creates the account at starting balance first.
	total, err = store.AdjustBalance(ctx, 2, 50, "Іван", 100)
	if err != nil {
		t.Fatalf("AdjustBalance (new user): %v", err)
	}
	if total != 150 {
		t.Errorf("new user balance after +50 is %d, want 150", total)
	}

	balance, err = store.GetBalance(ctx, 2, 100)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.DisplayName != "Іван" {
		t.Errorf("display name = %q, want Іван", balance.DisplayName)
	}

	// Empty display name must not erase the stored one.
	if _, err := store.AdjustBalance(ctx, 2, 0, "", 100); err != nil {
		t.Fatalf("AdjustBalance (empty name): %v", err)
	}
	balance, err = store.GetBalance(ctx, 2, 100)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.DisplayName != "Іван" {
		t.Errorf("display name after empty update = %q, want Іван", balance.DisplayName)
	}
}

func TestTopBalancesAndCreditAll(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	for i, delta := range []int64{50, 200, 0} {
		if _, err := store.AdjustBalance(ctx, int64(i+1), delta, "", 100); err != nil {
			t.Fatalf("AdjustBalance: %v", err)
		}
	}

	top, err := store.TopBalances(ctx, 2)
	if err != nil {
		t.Fatalf("TopBalances: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopBalances returned %d rows, want 2", len(top))
	}
	if top[0].UserID != 2 || top[0].Coins != 300 {
		t.Errorf("top entry = user %d with %d coins, want user 2 with 300", top[0].UserID, top[0].Coins)
	}

	credited, err := store.CreditAllBalances(ctx, 100)
	if err != nil {
		t.Fatalf("CreditAllBalances: %v", err)
	}
	if credited != 3 {
		t.Errorf("credited %d accounts, want 3", credited)
	}

	balance, err := store.GetBalance(ctx, 1, 100)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.Coins != 250 {
		t.Errorf("balance after credit = %d, want 250", balance.Coins)
	}
}

func TestBonusClaimRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	claim, err := store.GetBonusClaim(ctx, 7)
	if err != nil {
		t.Fatalf("GetBonusClaim: %v", err)
	}
	if claim != nil {
		t.Fatalf("unexpected claim for unknown user: %+v", claim)
	}

	if err := store.SaveBonusClaim(ctx, &database.BonusClaim{UserID: 7, ClaimDate: "2026-08-28", Attempts: 1}); err != nil {
		t.Fatalf("SaveBonusClaim: %v", err)
	}
	if err := store.SaveBonusClaim(ctx, &database.BonusClaim{UserID: 7, ClaimDate: "2026-08-28", Attempts: 2}); err != nil {
		t.Fatalf("SaveBonusClaim (update): %v", err)
	}

	claim, err = store.GetBonusClaim(ctx, 7)
	if err != nil {
		t.Fatalf("GetBonusClaim: %v", err)
	}
	if claim == nil || claim.ClaimDate != "2026-08-28" || claim.Attempts != 2 {
		t.Errorf("claim = %+v, want date 2026-08-28 attempts 2", claim)
	}
}

func TestActiveRiddleRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	riddle, err := store.GetActiveRiddle(ctx, 3)
	if err != nil {
		t.Fatalf("GetActiveRiddle: %v", err)
	}
	if riddle != nil {
		t.Fatalf("unexpected riddle for unknown user: %+v", riddle)
	}

	saved := &database.ActiveRiddle{
		UserID:   3,
		Question: "Скільки буде 7 + 8?",
		Answers:  database.JoinAnswers([]string{"15", "п'ятнадцять"}),
		Level:    1,
	}
	if err := store.SaveActiveRiddle(ctx, saved); err != nil {
		t.Fatalf("SaveActiveRiddle: %v", err)
	}

	riddle, err = store.GetActiveRiddle(ctx, 3)
	if err != nil {
		t.Fatalf("GetActiveRiddle: %v", err)
	}
	if riddle == nil || riddle.Question != saved.Question {
		t.Fatalf("riddle = %+v, want question %q", riddle, saved.Question)
	}
	if got := riddle.AnswerList(); len(got) != 2 || got[0] != "15" {
		t.Errorf("AnswerList = %v, want [15 п'ятнадцять]", got)
	}

	if err := store.DeleteActiveRiddle(ctx, 3); err != nil {
		t.Fatalf("DeleteActiveRiddle: %v", err)
	}
	riddle, err = store.GetActiveRiddle(ctx, 3)
	if err != nil {
		t.Fatalf("GetActiveRiddle: %v", err)
	}
	if riddle != nil {
		t.Errorf("riddle still present after delete: %+v", riddle)
	}
}

func TestClassificationStats(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.RecordClassification(ctx, 1, "Оля", true); err != nil {
			t.Fatalf("RecordClassification: %v", err)
		}
	}
	if err := store.RecordClassification(ctx, 1, "Оля", false); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}
	if err := store.RecordClassification(ctx, 2, "Іван", false); err != nil {
		t.Fatalf("RecordClassification: %v", err)
	}

	stats, err := store.AllStats(ctx)
	if err != nil {
		t.Fatalf("AllStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("AllStats returned %d users, want 2", len(stats))
	}
	if stats[0].UserID != 1 || stats[0].WorkTotal != 3 || stats[0].PersonalTotal != 1 {
		t.Errorf("stats[0] = %+v, want user 1 with 3 work / 1 personal", stats[0])
	}

	daily, err := store.DailyStats(ctx)
	if err != nil {
		t.Fatalf("DailyStats: %v", err)
	}
	if len(daily) != 2 {
		t.Fatalf("DailyStats returned %d users, want 2", len(daily))
	}
	// Ordered by work share, the work talker comes first.
	if daily[0].UserID != 1 {
		t.Errorf("daily[0] = user %d, want 1", daily[0].UserID)
	}

	if err := store.ResetDailyStats(ctx); err != nil {
		t.Fatalf("ResetDailyStats: %v", err)
	}
	daily, err = store.DailyStats(ctx)
	if err != nil {
		t.Fatalf("DailyStats: %v", err)
	}
	if len(daily) != 0 {
		t.Errorf("DailyStats after reset returned %d users, want 0", len(daily))
	}

	// Totals survive the daily reset.
	stats, err = store.AllStats(ctx)
	if err != nil {
		t.Fatalf("AllStats: %v", err)
	}
	if stats[0].WorkTotal != 3 {
		t.Errorf("work total after reset = %d, want 3", stats[0].WorkTotal)
	}
}

func TestMutedSet(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	muted, err := store.IsMuted(ctx, 5)
	if err != nil {
		t.Fatalf("IsMuted: %v", err)
	}
	if muted {
		t.Error("unknown user reported as muted")
	}

	if err := store.SetMuted(ctx, 5, true); err != nil {
		t.Fatalf("SetMuted(true): %v", err)
	}
	// Muting twice must not fail.
	if err := store.SetMuted(ctx, 5, true); err != nil {
		t.Fatalf("SetMuted(true) again: %v", err)
	}

	muted, err = store.IsMuted(ctx, 5)
	if err != nil {
		t.Fatalf("IsMuted: %v", err)
	}
	if !muted {
		t.Error("user not reported as muted")
	}

	if err := store.SetMuted(ctx, 5, false); err != nil {
		t.Fatalf("SetMuted(false): %v", err)
	}
	muted, err = store.IsMuted(ctx, 5)
	if err != nil {
		t.Fatalf("IsMuted: %v", err)
	}
	if muted {
		t.Error("user still muted after unmute")
	}
}

func TestChats(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	for _, chatID := range []int64{-100, 42, -100} {
		if err := store.AddChat(ctx, chatID); err != nil {
			t.Fatalf("AddChat(%d): %v", chatID, err)
		}
	}

	chats, err := store.Chats(ctx)
	if err != nil {
		t.Fatalf("Chats: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("Chats returned %d rows, want 2", len(chats))
	}
	if chats[0] != -100 || chats[1] != 42 {
		t.Errorf("Chats = %v, want [-100 42]", chats)
	}
}
