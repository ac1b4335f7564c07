package economy_test

import (
	"math/rand"
	"testing"

	"github.com/chatops-ua/workcop/internal/economy"
)

func TestPayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		outcome economy.Outcome
		bet     int64
		want    int64
	}{
		{name: "jackpot", outcome: economy.Outcome{"💎", "💎", "💎"}, bet: 10, want: 1000},
		{name: "triple sevens", outcome: economy.Outcome{"7️⃣", "7️⃣", "7️⃣"}, bet: 10, want: 500},
		{name: "triple cherries", outcome: economy.Outcome{"🍒", "🍒", "🍒"}, bet: 10, want: 30},
		{name: "pair first two", outcome: economy.Outcome{"🍋", "🍋", "💎"}, bet: 25, want: 25},
		{name: "pair last two", outcome: economy.Outcome{"💎", "🍋", "🍋"}, bet: 25, want: 25},
		{name: "pair outer", outcome: economy.Outcome{"🍇", "🍋", "🍇"}, bet: 25, want: 25},
		{name: "no match", outcome: economy.Outcome{"🍒", "🍋", "🍊"}, bet: 100, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := economy.Payout(tc.outcome, tc.bet); got != tc.want {
				t.Errorf("Payout(%v, %d) = %d, want %d", tc.outcome, tc.bet, got, tc.want)
			}
			// Deterministic: same inputs, same winnings.
			if got := economy.Payout(tc.outcome, tc.bet); got != tc.want {
				t.Errorf("Payout is not deterministic for %v", tc.outcome)
			}
		})
	}
}

func TestJackpotNetGain(t *testing.T) {
	t.Parallel()

	// Starting balance 100, bet 10, jackpot pays 100x: 100 - 10 + 1000 = 1090.
	var balance int64 = 100
	var bet int64 = 10
	winnings := economy.Payout(economy.Outcome{"💎", "💎", "💎"}, bet)
	balance += winnings - bet

	if balance != 1090 {
		t.Errorf("balance after jackpot = %d, want 1090", balance)
	}
}

func TestSpinDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a := economy.NewSlotMachine(rand.New(rand.NewSource(42)))
	b := economy.NewSlotMachine(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		if got, want := a.Spin(), b.Spin(); got != want {
			t.Fatalf("spin %d diverged: %v vs %v", i, got, want)
		}
	}
}

func TestSpinWeightsFavourCommonSymbols(t *testing.T) {
	t.Parallel()

	m := economy.NewSlotMachine(rand.New(rand.NewSource(7)))

	counts := make(map[string]int)
	for i := 0; i < 3000; i++ {
		for _, sym := range m.Spin() {
			counts[sym]++
		}
	}

	if counts["🍒"] <= counts["💎"] {
		t.Errorf("cherries (%d draws) should be far more common than diamonds (%d draws)",
			counts["🍒"], counts["💎"])
	}
	for sym := range counts {
		if economy.Payout(economy.Outcome{sym, sym, sym}, 1) == 0 {
			t.Errorf("drawn symbol %q has no triple payout", sym)
		}
	}
}
