package content_test

import (
	"strings"
	"testing"

	"github.com/chatops-ua/workcop/internal/content"
)

func TestRiddleBankLevels(t *testing.T) {
	t.Parallel()

	bank := content.NewRiddleBank()

	for level := content.MinRiddleLevel; level <= content.MaxRiddleLevel; level++ {
		riddles := bank.Level(level)
		if len(riddles) == 0 {
			t.Errorf("level %d has no riddles", level)
		}
		for _, r := range riddles {
			if r.Question == "" {
				t.Errorf("level %d has a riddle with empty question", level)
			}
			if len(r.Answers) == 0 {
				t.Errorf("level %d riddle %q has no answers", level, r.Question)
			}
		}
	}

	if got := bank.Level(content.MaxRiddleLevel + 1); len(got) != 0 {
		t.Errorf("Level(%d) = %d riddles, want 0", content.MaxRiddleLevel+1, len(got))
	}
}

func TestRiddleBankLevelReturnsCopy(t *testing.T) {
	t.Parallel()

	bank := content.NewRiddleBank()

	first := bank.Level(1)
	first[0].Question = "mutated"

	if got := bank.Level(1)[0].Question; got == "mutated" {
		t.Error("mutating the returned slice changed the bank")
	}
}

func TestRiddleBankExtend(t *testing.T) {
	t.Parallel()

	bank := content.NewRiddleBank()
	before := len(bank.Level(2))
	existing := bank.Level(2)[0]

	added := bank.Extend(2, []content.Riddle{
		existing, // duplicate question, skipped
		{Question: "Скільки буде 6 * 7?", Answers: []string{"42"}},
		{Question: "", Answers: []string{"nope"}}, // invalid, skipped
		{Question: "no answers"},                  // invalid, skipped
	})

	if added != 1 {
		t.Errorf("Extend added %d riddles, want 1", added)
	}
	if got := len(bank.Level(2)); got != before+1 {
		t.Errorf("level 2 has %d riddles, want %d", got, before+1)
	}

	if got := bank.Extend(0, []content.Riddle{{Question: "x", Answers: []string{"y"}}}); got != 0 {
		t.Errorf("Extend on invalid level added %d riddles, want 0", got)
	}
}

func TestLevelRewardsEscalate(t *testing.T) {
	t.Parallel()

	prev := int64(0)
	for level := content.MinRiddleLevel; level <= content.MaxRiddleLevel; level++ {
		reward := content.LevelReward(level)
		if reward <= prev {
			t.Errorf("reward for level %d is %d, not above level %d's %d", level, reward, level-1, prev)
		}
		prev = reward
	}

	if got := content.LevelReward(99); got != 50 {
		t.Errorf("LevelReward(99) = %d, want fallback 50", got)
	}
	if got := content.LevelName(99); got != content.LevelName(content.MinRiddleLevel) {
		t.Errorf("LevelName(99) = %q, want fallback %q", got, content.LevelName(content.MinRiddleLevel))
	}
}

func TestCarForWorkShareTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workPct float64
		maxCool int
		minCool int
	}{
		{name: "workaholic", workPct: 95, minCool: 1, maxCool: 2},
		{name: "mostly work", workPct: 70, minCool: 3, maxCool: 3},
		{name: "balanced", workPct: 50, minCool: 4, maxCool: 5},
		{name: "mostly chill", workPct: 30, minCool: 6, maxCool: 7},
		{name: "barely work", workPct: 15, minCool: 8, maxCool: 9},
		{name: "pure vibes", workPct: 5, minCool: 10, maxCool: 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				car := content.CarForWorkShare(tc.workPct)
				if car.Coolness < tc.minCool || car.Coolness > tc.maxCool {
					t.Fatalf("work %.0f%% got %q coolness %d, want in [%d, %d]",
						tc.workPct, car.Name, car.Coolness, tc.minCool, tc.maxCool)
				}
			}
		})
	}
}

func TestJokesIncludeTargetName(t *testing.T) {
	t.Parallel()

	for i := 0; i < 30; i++ {
		if got := content.RandomRoast("Тарас"); !strings.Contains(got, "Тарас") {
			t.Fatalf("roast %q does not mention the target", got)
		}
		if got := content.RandomCompliment("Тарас"); !strings.Contains(got, "Тарас") {
			t.Fatalf("compliment %q does not mention the target", got)
		}
	}
}

func TestRandomWorkReplyNonEmpty(t *testing.T) {
	t.Parallel()

	for i := 0; i < 30; i++ {
		if content.RandomWorkReply() == "" {
			t.Fatal("empty work reply")
		}
	}
}
