package economy

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/chatops-ua/workcop/internal/content"
	"github.com/chatops-ua/workcop/internal/database"
)

type fakeStore struct {
	balances map[int64]*database.Balance
	claims   map[int64]*database.BonusClaim
	riddles  map[int64]*database.ActiveRiddle
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		balances: make(map[int64]*database.Balance),
		claims:   make(map[int64]*database.BonusClaim),
		riddles:  make(map[int64]*database.ActiveRiddle),
	}
}

func (f *fakeStore) GetBalance(_ context.Context, userID, starting int64) (*database.Balance, error) {
	b, ok := f.balances[userID]
	if !ok {
		b = &database.Balance{UserID: userID, Coins: starting}
		f.balances[userID] = b
	}
	return b, nil
}

func (f *fakeStore) AdjustBalance(ctx context.Context, userID, delta int64, name string, starting int64) (int64, error) {
	b, _ := f.GetBalance(ctx, userID, starting)
	b.Coins += delta
	if name != "" {
		b.DisplayName = name
	}
	return b.Coins, nil
}

func (f *fakeStore) TopBalances(_ context.Context, limit int) ([]database.Balance, error) {
	var out []database.Balance
	for _, b := range f.balances {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Coins > out[j].Coins })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) CreditAllBalances(_ context.Context, amount int64) (int64, error) {
	for _, b := range f.balances {
		b.Coins += amount
	}
	return int64(len(f.balances)), nil
}

func (f *fakeStore) GetBonusClaim(_ context.Context, userID int64) (*database.BonusClaim, error) {
	c, ok := f.claims[userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) SaveBonusClaim(_ context.Context, claim *database.BonusClaim) error {
	cp := *claim
	f.claims[claim.UserID] = &cp
	return nil
}

func (f *fakeStore) GetActiveRiddle(_ context.Context, userID int64) (*database.ActiveRiddle, error) {
	r, ok := f.riddles[userID]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) SaveActiveRiddle(_ context.Context, riddle *database.ActiveRiddle) error {
	cp := *riddle
	f.riddles[riddle.UserID] = &cp
	return nil
}

func (f *fakeStore) DeleteActiveRiddle(_ context.Context, userID int64) error {
	delete(f.riddles, userID)
	return nil
}

func newTestService(store *fakeStore) *RiddleService {
	svc := NewRiddleService(
		store,
		NewLedger(store, 100),
		content.NewRiddleBank(),
		RiddleConfig{DailyBonus: 50, MaxLevel: 5, AttemptsPerLevel: 5},
		time.UTC,
	)
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestClaimBonusFirstOfDay(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	res, err := svc.ClaimBonus(ctx, 1, "Oksana")
	if err != nil {
		t.Fatalf("ClaimBonus: %v", err)
	}
	if res.Outcome != ClaimFreeBonus {
		t.Fatalf("outcome = %v, want ClaimFreeBonus", res.Outcome)
	}
	if res.Bonus != 50 || res.NewBalance != 150 {
		t.Errorf("bonus %d balance %d, want 50 and 150", res.Bonus, res.NewBalance)
	}
	if c := store.claims[1]; c == nil || c.Attempts != 1 {
		t.Errorf("claim record = %+v, want attempts 1", c)
	}
}

func TestClaimBonusIssuesRiddleThenRedisplays(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.ClaimBonus(ctx, 1, "Oksana"); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	issued, err := svc.ClaimBonus(ctx, 1, "Oksana")
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if issued.Outcome != ClaimRiddleIssued {
		t.Fatalf("outcome = %v, want ClaimRiddleIssued", issued.Outcome)
	}
	if issued.Level != 1 || issued.Number != 2 {
		t.Errorf("level %d number %d, want level 1 number 2", issued.Level, issued.Number)
	}
	if issued.Reward != content.LevelReward(1) {
		t.Errorf("reward %d, want %d", issued.Reward, content.LevelReward(1))
	}

	pending, err := svc.ClaimBonus(ctx, 1, "Oksana")
	if err != nil {
		t.Fatalf("third claim: %v", err)
	}
	if pending.Outcome != ClaimRiddlePending {
		t.Fatalf("outcome = %v, want ClaimRiddlePending", pending.Outcome)
	}
	if pending.Question != issued.Question {
		t.Errorf("pending question %q, want the issued %q", pending.Question, issued.Question)
	}
}

func TestClaimBonusExhausted(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	store.claims[1] = &database.BonusClaim{UserID: 1, ClaimDate: "2026-08-28", Attempts: 25}

	res, err := svc.ClaimBonus(ctx, 1, "Oksana")
	if err != nil {
		t.Fatalf("ClaimBonus: %v", err)
	}
	if res.Outcome != ClaimExhausted {
		t.Errorf("outcome = %v, want ClaimExhausted", res.Outcome)
	}
	if store.riddles[1] != nil {
		t.Error("exhausted claim must not issue a riddle")
	}
}

func TestCheckAnswerCorrect(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	store.claims[1] = &database.BonusClaim{UserID: 1, ClaimDate: "2026-08-28", Attempts: 4}
	store.riddles[1] = &database.ActiveRiddle{
		UserID:   1,
		Question: "Який результат: 10 % 3?",
		Answers:  "1",
		Level:    1,
	}

	res, err := svc.CheckAnswer(ctx, 1, "Oksana", "думаю, відповідь 1")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if res == nil {
		t.Fatal("correct answer not recognized")
	}
	if res.Reward != content.LevelReward(1) {
		t.Errorf("reward %d, want %d", res.Reward, content.LevelReward(1))
	}
	if res.NewBalance != 100+content.LevelReward(1) {
		t.Errorf("balance %d, want %d", res.NewBalance, 100+content.LevelReward(1))
	}
	if store.riddles[1] != nil {
		t.Error("active riddle not cleared after correct answer")
	}
	if c := store.claims[1]; c.Attempts != 5 {
		t.Errorf("attempts = %d, want 5", c.Attempts)
	}
	// Five attempts done, next riddle is level 2.
	if res.NextLevelName != content.LevelName(2) {
		t.Errorf("next level %q, want %q", res.NextLevelName, content.LevelName(2))
	}
}

func TestCheckAnswerWholeTokenOnly(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	store.riddles[1] = &database.ActiveRiddle{UserID: 1, Question: "q", Answers: "1", Level: 1}

	res, err := svc.CheckAnswer(ctx, 1, "Oksana", "11")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if res != nil {
		t.Error("'11' must not match answer '1'")
	}
	if store.riddles[1] == nil {
		t.Error("wrong answer must keep the riddle active")
	}
}

func TestCheckAnswerNoActiveRiddle(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore())

	res, err := svc.CheckAnswer(context.Background(), 1, "Oksana", "15")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if res != nil {
		t.Error("message without active riddle must pass through")
	}
}

func TestNewDayResetsProgression(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	store.claims[1] = &database.BonusClaim{UserID: 1, ClaimDate: "2026-08-27", Attempts: 25}

	res, err := svc.ClaimBonus(ctx, 1, "Oksana")
	if err != nil {
		t.Fatalf("ClaimBonus: %v", err)
	}
	if res.Outcome != ClaimFreeBonus {
		t.Errorf("outcome = %v, want ClaimFreeBonus on a new day", res.Outcome)
	}
	if c := store.claims[1]; c.ClaimDate != "2026-08-28" || c.Attempts != 1 {
		t.Errorf("claim = %+v, want date 2026-08-28 attempts 1", c)
	}
}

func TestPickRiddleDeterministicPerDay(t *testing.T) {
	t.Parallel()

	svcA := newTestService(newFakeStore())
	svcB := newTestService(newFakeStore())

	for attempts := 1; attempts <= 5; attempts++ {
		a, err := svcA.pickRiddle("2026-08-28", 3, attempts)
		if err != nil {
			t.Fatalf("pickRiddle: %v", err)
		}
		b, err := svcB.pickRiddle("2026-08-28", 3, attempts)
		if err != nil {
			t.Fatalf("pickRiddle: %v", err)
		}
		if a.Question != b.Question {
			t.Errorf("attempt %d: different riddles for the same day and level: %q vs %q",
				attempts, a.Question, b.Question)
		}
	}

	sameDay, _ := svcA.pickRiddle("2026-08-28", 3, 1)
	nextDay, _ := svcA.pickRiddle("2026-08-29", 3, 1)
	if sameDay.Question == nextDay.Question {
		t.Log("same riddle on consecutive days; allowed, but suspicious if it repeats for every level")
	}
}

func TestLevelForEscalatesEveryFiveAttempts(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore())

	tests := []struct {
		attempts int
		want     int
	}{
		{attempts: 1, want: 1},
		{attempts: 4, want: 1},
		{attempts: 5, want: 2},
		{attempts: 9, want: 2},
		{attempts: 10, want: 3},
		{attempts: 20, want: 5},
		{attempts: 24, want: 5},
	}

	for _, tc := range tests {
		if got := svc.levelFor(tc.attempts); got != tc.want {
			t.Errorf("levelFor(%d) = %d, want %d", tc.attempts, got, tc.want)
		}
	}
}

func TestAnswerMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		answers []string
		want    bool
	}{
		{name: "exact", text: "15", answers: []string{"15"}, want: true},
		{name: "embedded token", text: "the answer is 1", answers: []string{"1"}, want: true},
		{name: "substring of longer number", text: "11", answers: []string{"1"}, want: false},
		{name: "case insensitive", text: "KYIV!", answers: []string{"kyiv"}, want: true},
		{name: "cyrillic", text: "Це Київ, сто відсотків", answers: []string{"київ"}, want: true},
		{name: "multiword", text: "мабуть hypertext markup language", answers: []string{"hypertext markup language"}, want: true},
		{name: "punctuated answer", text: "складність o(log n) звісно", answers: []string{"o(log n)"}, want: true},
		{name: "trailing digit breaks token", text: "3.141", answers: []string{"3.14"}, want: false},
		{name: "whitespace trimmed", text: "  вівторок  ", answers: []string{"вівторок"}, want: true},
		{name: "blank text", text: "   ", answers: []string{"1"}, want: false},
		{name: "no match", text: "без поняття", answers: []string{"15"}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := AnswerMatches(tc.text, tc.answers); got != tc.want {
				t.Errorf("AnswerMatches(%q, %v) = %v, want %v", tc.text, tc.answers, got, tc.want)
			}
		})
	}
}
