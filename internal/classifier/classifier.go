// Package classifier decides whether a chat message is work talk or
// personal talk. The bot consumes it only through the Classifier interface,
// so the scoring backend can be swapped without touching handlers.
package classifier

import (
	"math"
	"strings"
)

// Prediction is the classification verdict for one message.
type Prediction struct {
	Label      string  // "work" or "personal"
	Confidence float64 // 0..1, confidence in Label
	IsWork     bool
}

// Classifier classifies free-form chat text.
type Classifier interface {
	Predict(text string) Prediction
}

// LabelWork and LabelPersonal are the two possible verdict labels.
const (
	LabelWork     = "work"
	LabelPersonal = "personal"
)

// workKeywords are the markers of work talk: tooling, process, payments
// domain vocabulary, and team names, in Ukrainian and English spellings.
var workKeywords = []string{
	"keyo", "кейо", "pos", "пос", "nrf", "нрф", "девайс", "device", "біометр",
	"stripe", "страйп", "biopay", "біопей", "api", "sdk", "backend", "бекенд",
	"frontend", "фронтенд", "андроїд", "android", "ios", "застосунок", "апка",
	"сканінг", "енрол", "транзакц", "payment", "платіж", "деплой", "deploy",
	"тікет", "ticket", "джира", "jira", "лінеар", "linear", "мітинг", "meeting",
	"стендап", "standup", "дейлі", "daily", "спринт", "sprint", "реліз", "release",
	"мердж", "merge", "код", "code", "баг", "bug", "фікс", "fix",
	"рев'ю", "review", "естімейт", "дедлайн", "deadline", "пайплайн", "ci/cd",
	"команд", "team", "тім", "проєкт", "project", "клієнт", "client",
	"менеджер", "manager", "директор", "director", "cto",
	"зарплат", "salary", "рейз", "відпустк", "контракт",
	"сервер", "server", "сокет", "websocket", "ендпоінт", "флоу", "flow",
	"імплемент", "компіл", "білд", "build", "xcode", "gradle", "слек", "slack",
	"демо", "demo",
}

// Scoring weights, tuned so that a message with two or more keyword hits in
// ordinary chat-length text crosses the teasing threshold.
const (
	weightCount   = 2.0
	weightDensity = 3.0
	bias          = -1.0
)

// keywordClassifier scores text by keyword count and keyword density.
type keywordClassifier struct {
	keywords []string
}

// New returns the keyword-based Classifier.
func New() Classifier {
	return &keywordClassifier{keywords: workKeywords}
}

// Predict classifies a message. Empty or blank input is personal with full
// confidence.
func (c *keywordClassifier) Predict(text string) Prediction {
	if strings.TrimSpace(text) == "" {
		return Prediction{Label: LabelPersonal, Confidence: 1.0, IsWork: false}
	}

	lower := strings.ToLower(text)

	count := 0
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}

	words := len(strings.Fields(lower))
	if words == 0 {
		words = 1
	}
	density := float64(count) / float64(words)

	score := weightCount*float64(count) + weightDensity*density + bias
	workProb := sigmoid(score)

	if workProb >= 0.5 {
		return Prediction{Label: LabelWork, Confidence: workProb, IsWork: true}
	}
	return Prediction{Label: LabelPersonal, Confidence: 1 - workProb, IsWork: false}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
