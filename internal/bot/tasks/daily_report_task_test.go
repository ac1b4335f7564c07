package tasks

import (
	"strings"
	"testing"

	"github.com/chatops-ua/workcop/internal/database"
)

func TestFormatDailyReport(t *testing.T) {
	t.Parallel()

	stats := []database.UserStats{
		{UserID: 1, DisplayName: "Оля", WorkDaily: 9, PersonalDaily: 1},
		{UserID: 2, DisplayName: "Іван", WorkDaily: 1, PersonalDaily: 9},
		{UserID: 3, DisplayName: "", WorkDaily: 2, PersonalDaily: 2},
		{UserID: 4, DisplayName: "Тихий", WorkDaily: 0, PersonalDaily: 0},
	}

	got := formatDailyReport(stats)

	for _, want := range []string{
		"ЩОДЕННИЙ РОЗПОДІЛ МАШИН",
		"*Оля* — 💼 90% (9/10)",
		"*Іван* — 💼 10% (1/10)",
		"*Анонім* — 💼 50% (2/4)",
		"к.с.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report %q does not contain %q", got, want)
		}
	}

	if strings.Contains(got, "Тихий") {
		t.Error("report includes a user with no messages counted")
	}
}
