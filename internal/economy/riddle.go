package economy

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/chatops-ua/workcop/internal/content"
	"github.com/chatops-ua/workcop/internal/database"
)

// RiddleStore is the slice of the data layer the riddle progression needs.
type RiddleStore interface {
	GetBonusClaim(ctx context.Context, userID int64) (*database.BonusClaim, error)
	SaveBonusClaim(ctx context.Context, claim *database.BonusClaim) error
	GetActiveRiddle(ctx context.Context, userID int64) (*database.ActiveRiddle, error)
	SaveActiveRiddle(ctx context.Context, riddle *database.ActiveRiddle) error
	DeleteActiveRiddle(ctx context.Context, userID int64) error
}

// RiddleConfig holds the tunable progression constants.
type RiddleConfig struct {
	DailyBonus       int64
	MaxLevel         int
	AttemptsPerLevel int
}

// ClaimOutcome says what a bonus claim produced.
type ClaimOutcome int

const (
	// ClaimFreeBonus: first claim of the day, coins granted outright.
	ClaimFreeBonus ClaimOutcome = iota
	// ClaimRiddleIssued: a new riddle was handed out.
	ClaimRiddleIssued
	// ClaimRiddlePending: the user already holds an unanswered riddle.
	ClaimRiddlePending
	// ClaimExhausted: the user hit the daily riddle limit.
	ClaimExhausted
)

// ClaimResult describes the outcome of a /bonus claim.
type ClaimResult struct {
	Outcome    ClaimOutcome
	Bonus      int64 // free bonus amount, ClaimFreeBonus only
	NewBalance int64 // balance after the free bonus, ClaimFreeBonus only

	// Riddle fields, set for ClaimRiddleIssued and ClaimRiddlePending.
	Number    int // ordinal of the riddle today, 1-based
	Question  string
	Level     int
	LevelName string
	Reward    int64
}

// AnswerResult describes a correctly answered riddle.
type AnswerResult struct {
	Reward        int64
	NewBalance    int64
	Level         int
	LevelName     string
	NextLevelName string
}

// RiddleService runs the daily bonus and riddle progression. A user's first
// claim of the day grants coins for free; further claims issue riddles whose
// difficulty escalates with every correct answer.
type RiddleService struct {
	store  RiddleStore
	ledger *Ledger
	bank   *content.RiddleBank
	cfg    RiddleConfig
	loc    *time.Location
	now    func() time.Time
}

// NewRiddleService wires the progression to its store, ledger, and bank.
// loc decides when "today" rolls over.
func NewRiddleService(store RiddleStore, ledger *Ledger, bank *content.RiddleBank, cfg RiddleConfig, loc *time.Location) *RiddleService {
	return &RiddleService{
		store:  store,
		ledger: ledger,
		bank:   bank,
		cfg:    cfg,
		loc:    loc,
		now:    time.Now,
	}
}

func (s *RiddleService) today() string {
	return s.now().In(s.loc).Format("2006-01-02")
}

func (s *RiddleService) levelFor(attempts int) int {
	level := attempts/s.cfg.AttemptsPerLevel + 1
	if level > s.cfg.MaxLevel {
		level = s.cfg.MaxLevel
	}
	return level
}

// ClaimBonus handles /bonus: free coins on the first claim of the day, a
// riddle afterwards, until the daily riddle budget is spent.
func (s *RiddleService) ClaimBonus(ctx context.Context, userID int64, displayName string) (*ClaimResult, error) {
	active, err := s.store.GetActiveRiddle(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active riddle: %w", err)
	}
	if active != nil {
		return &ClaimResult{
			Outcome:   ClaimRiddlePending,
			Question:  active.Question,
			Level:     active.Level,
			LevelName: content.LevelName(active.Level),
			Reward:    content.LevelReward(active.Level),
		}, nil
	}

	today := s.today()

	claim, err := s.store.GetBonusClaim(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bonus claim: %w", err)
	}

	if claim == nil || claim.ClaimDate != today {
		newBalance, err := s.ledger.Adjust(ctx, userID, s.cfg.DailyBonus, displayName)
		if err != nil {
			return nil, err
		}
		if err := s.store.SaveBonusClaim(ctx, &database.BonusClaim{
			UserID:    userID,
			ClaimDate: today,
			Attempts:  1,
		}); err != nil {
			return nil, fmt.Errorf("failed to save bonus claim: %w", err)
		}
		return &ClaimResult{
			Outcome:    ClaimFreeBonus,
			Bonus:      s.cfg.DailyBonus,
			NewBalance: newBalance,
		}, nil
	}

	if claim.Attempts >= s.cfg.MaxLevel*s.cfg.AttemptsPerLevel {
		return &ClaimResult{Outcome: ClaimExhausted}, nil
	}

	level := s.levelFor(claim.Attempts)
	riddle, err := s.pickRiddle(today, level, claim.Attempts)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveActiveRiddle(ctx, &database.ActiveRiddle{
		UserID:   userID,
		Question: riddle.Question,
		Answers:  database.JoinAnswers(riddle.Answers),
		Level:    level,
	}); err != nil {
		return nil, fmt.Errorf("failed to save active riddle: %w", err)
	}

	return &ClaimResult{
		Outcome:   ClaimRiddleIssued,
		Number:    claim.Attempts + 1,
		Question:  riddle.Question,
		Level:     level,
		LevelName: content.LevelName(level),
		Reward:    content.LevelReward(level),
	}, nil
}

// pickRiddle selects deterministically for the day and level: all users see
// the same shuffled set, indexed by how far into the level they are.
func (s *RiddleService) pickRiddle(date string, level, attempts int) (content.Riddle, error) {
	pool := s.bank.Level(level)
	if len(pool) == 0 {
		return content.Riddle{}, fmt.Errorf("no riddles available for level %d", level)
	}

	h := fnv.New64a()
	fmt.Fprintf(h, "%s:%d", date, level)
	order := rand.New(rand.NewSource(int64(h.Sum64()))).Perm(len(pool))

	idx := order[((attempts-1)%s.cfg.AttemptsPerLevel)%len(pool)]
	return pool[idx], nil
}

// CheckAnswer tests a chat message against the user's pending riddle. A nil
// result means the message was not a correct answer and should be handled as
// an ordinary message.
func (s *RiddleService) CheckAnswer(ctx context.Context, userID int64, displayName, text string) (*AnswerResult, error) {
	active, err := s.store.GetActiveRiddle(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active riddle: %w", err)
	}
	if active == nil || !AnswerMatches(text, active.AnswerList()) {
		return nil, nil
	}

	reward := content.LevelReward(active.Level)
	newBalance, err := s.ledger.Adjust(ctx, userID, reward, displayName)
	if err != nil {
		return nil, err
	}

	today := s.today()
	claim, err := s.store.GetBonusClaim(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bonus claim: %w", err)
	}
	if claim == nil || claim.ClaimDate != today {
		claim = &database.BonusClaim{UserID: userID, ClaimDate: today, Attempts: 1}
	} else {
		claim.Attempts++
	}
	if err := s.store.SaveBonusClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to save bonus claim: %w", err)
	}

	if err := s.store.DeleteActiveRiddle(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear active riddle: %w", err)
	}

	return &AnswerResult{
		Reward:        reward,
		NewBalance:    newBalance,
		Level:         active.Level,
		LevelName:     content.LevelName(active.Level),
		NextLevelName: content.LevelName(s.levelFor(claim.Attempts)),
	}, nil
}

// AnswerMatches reports whether any accepted answer appears in text as a
// whole token: case-insensitive, surrounded by non-alphanumeric characters
// or the text boundaries. The answer "1" does not match inside "11" but does
// match in "the answer is 1".
func AnswerMatches(text string, answers []string) bool {
	norm := strings.ToLower(strings.TrimSpace(text))
	if norm == "" {
		return false
	}
	for _, ans := range answers {
		ans = strings.ToLower(strings.TrimSpace(ans))
		if ans == "" {
			continue
		}
		if containsToken(norm, ans) {
			return true
		}
	}
	return false
}

func containsToken(text, sub string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], sub)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(sub)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		from = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
