package classifier_test

import (
	"testing"

	"github.com/chatops-ua/workcop/internal/classifier"
)

func TestPredictBlankInput(t *testing.T) {
	t.Parallel()

	c := classifier.New()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "spaces", text: "   "},
		{name: "whitespace mix", text: " \t\n "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := c.Predict(tc.text)
			if got.Label != classifier.LabelPersonal {
				t.Errorf("Predict(%q).Label = %q, want %q", tc.text, got.Label, classifier.LabelPersonal)
			}
			if got.Confidence != 1.0 {
				t.Errorf("Predict(%q).Confidence = %v, want 1.0", tc.text, got.Confidence)
			}
			if got.IsWork {
				t.Errorf("Predict(%q).IsWork = true, want false", tc.text)
			}
		})
	}
}

func TestPredictLabels(t *testing.T) {
	t.Parallel()

	c := classifier.New()

	tests := []struct {
		name     string
		text     string
		wantWork bool
	}{
		{name: "deploy talk", text: "деплой впав, треба хотфікс у реліз", wantWork: true},
		{name: "english standup", text: "standup in 5, then sprint review and merge", wantWork: true},
		{name: "jira ticket", text: "хто закриє тікет в джирі?", wantWork: true},
		{name: "small talk", text: "як справи? підемо ввечері гуляти", wantWork: false},
		{name: "food", text: "хочу піцу і морозиво", wantWork: false},
		{name: "weekend plans", text: "на вихідних їдемо в гори", wantWork: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := c.Predict(tc.text)
			if got.IsWork != tc.wantWork {
				t.Errorf("Predict(%q).IsWork = %v, want %v (label=%q conf=%.3f)",
					tc.text, got.IsWork, tc.wantWork, got.Label, got.Confidence)
			}
			if got.Confidence < 0.5 || got.Confidence > 1.0 {
				t.Errorf("Predict(%q).Confidence = %v, want in [0.5, 1.0]", tc.text, got.Confidence)
			}
		})
	}
}

func TestPredictConfidenceGrowsWithEvidence(t *testing.T) {
	t.Parallel()

	c := classifier.New()

	weak := c.Predict("подивись код коли буде час будь ласка дуже прошу")
	strong := c.Predict("деплой реліз мердж баг фікс спринт")

	if !strong.IsWork {
		t.Fatalf("expected keyword-dense message to be work, got %+v", strong)
	}
	if strong.Confidence <= weak.Confidence && weak.IsWork {
		t.Errorf("dense message confidence %.3f not above sparse %.3f", strong.Confidence, weak.Confidence)
	}
}
