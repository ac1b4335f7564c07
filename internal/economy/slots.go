// Package economy implements the coin economy: the slot machine, the
// balance ledger, and the riddle/bonus progression.
package economy

import (
	"math/rand"
	"sync"
)

// Slot machine symbols, ordered from most to least common.
var slotSymbols = []string{"🍒", "🍋", "🍊", "🍇", "🔔", "⭐", "7️⃣", "💎"}

// Draw weights per symbol. Rarer symbols pay more.
var slotWeights = []int{25, 20, 18, 15, 10, 7, 4, 1}

// Bet multipliers for a triple of the same symbol.
var slotPayouts = map[string]int64{
	"💎": 100, // jackpot
	"7️⃣": 50,
	"⭐": 25,
	"🔔": 15,
	"🍇": 10,
	"🍊": 8,
	"🍋": 5,
	"🍒": 3,
}

// Jackpot symbols for the top two win tiers, used to pick the win message.
const (
	JackpotSymbol = "💎"
	MegaWinSymbol = "7️⃣"
)

// Outcome is one spin result of three symbols.
type Outcome [3]string

// SlotMachine draws weighted random outcomes. Safe for concurrent use.
type SlotMachine struct {
	mu          sync.Mutex
	rng         *rand.Rand
	totalWeight int
}

// NewSlotMachine returns a machine using the given random source.
func NewSlotMachine(rng *rand.Rand) *SlotMachine {
	total := 0
	for _, w := range slotWeights {
		total += w
	}
	return &SlotMachine{rng: rng, totalWeight: total}
}

// Spin draws three independent weighted symbols.
func (m *SlotMachine) Spin() Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out Outcome
	for i := range out {
		out[i] = m.draw()
	}
	return out
}

func (m *SlotMachine) draw() string {
	n := m.rng.Intn(m.totalWeight)
	for i, w := range slotWeights {
		if n < w {
			return slotSymbols[i]
		}
		n -= w
	}
	return slotSymbols[len(slotSymbols)-1]
}

// Payout returns the winnings for an outcome and bet: a triple pays the
// symbol's multiplier times the bet, any pair returns the bet, anything else
// pays nothing. The net balance change is Payout(o, bet) - bet.
func Payout(o Outcome, bet int64) int64 {
	if o[0] == o[1] && o[1] == o[2] {
		if mult, ok := slotPayouts[o[0]]; ok {
			return bet * mult
		}
		return 0
	}
	if o[0] == o[1] || o[1] == o[2] || o[0] == o[2] {
		return bet
	}
	return 0
}
