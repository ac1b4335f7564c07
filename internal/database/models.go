package database

import (
	"strings"
	"time"
)

// Balance is a user's coin account. Rows are created lazily with the
// configured starting balance on first access and never deleted.
type Balance struct {
	UserID      int64     `db:"user_id"`
	Coins       int64     `db:"coins"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// BonusClaim tracks the last day a user claimed the daily bonus and how many
// riddles they have solved that day. A stored date different from today means
// the counter is stale and treated as zero by the caller.
type BonusClaim struct {
	UserID    int64     `db:"user_id"`
	ClaimDate string    `db:"claim_date"` // YYYY-MM-DD
	Attempts  int       `db:"attempts"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ActiveRiddle is the single pending riddle a user must answer before
// receiving another one. The primary key on user_id enforces at most one.
type ActiveRiddle struct {
	UserID    int64     `db:"user_id"`
	Question  string    `db:"question"`
	Answers   string    `db:"answers"` // accepted answers joined with '\n'
	Level     int       `db:"level"`
	CreatedAt time.Time `db:"created_at"`
}

// AnswerList splits the stored accepted-answer column back into a slice.
func (r *ActiveRiddle) AnswerList() []string {
	return strings.Split(r.Answers, "\n")
}

// JoinAnswers encodes an accepted-answer set for storage.
func JoinAnswers(answers []string) string {
	return strings.Join(answers, "\n")
}

// UserStats holds cumulative and per-day message classification counters for
// one user. Daily counters are reset by the daily report task.
type UserStats struct {
	UserID        int64     `db:"user_id"`
	DisplayName   string    `db:"display_name"`
	WorkTotal     int64     `db:"work_total"`
	PersonalTotal int64     `db:"personal_total"`
	WorkDaily     int64     `db:"work_daily"`
	PersonalDaily int64     `db:"personal_daily"`
	UpdatedAt     time.Time `db:"updated_at"`
}
