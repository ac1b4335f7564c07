// Package content holds the static joke material served by the bot: the
// riddle bank, the car catalog, work-talk teasing replies, roasts, and
// compliments.
package content

import "sync"

// Riddle is one question with its accepted answers. Answers are stored
// lowercase; matching against user text is done by the economy package.
type Riddle struct {
	Question string
	Answers  []string
}

// Riddle difficulty levels.
const (
	MinRiddleLevel = 1
	MaxRiddleLevel = 5
)

var levelRewards = map[int]int64{
	1: 20,
	2: 35,
	3: 50,
	4: 75,
	5: 100,
}

var levelNames = map[int]string{
	1: "🟢 Easy",
	2: "🟡 Medium",
	3: "🟠 Hard",
	4: "🔴 Expert",
	5: "💀 Genius",
}

// LevelReward returns the coin reward for answering a riddle of the given
// level. Unknown levels pay the mid-range reward.
func LevelReward(level int) int64 {
	if r, ok := levelRewards[level]; ok {
		return r
	}
	return 50
}

// LevelName returns the display name for a riddle level.
func LevelName(level int) string {
	if n, ok := levelNames[level]; ok {
		return n
	}
	return levelNames[MinRiddleLevel]
}

// RiddleBank is the catalog of riddles grouped by difficulty level. The
// built-in riddles are always present; generated riddles can be appended at
// runtime by the refresh task, so access is guarded by a mutex.
type RiddleBank struct {
	mu     sync.RWMutex
	levels map[int][]Riddle
}

// NewRiddleBank returns a bank seeded with the built-in riddles.
func NewRiddleBank() *RiddleBank {
	levels := make(map[int][]Riddle, len(builtinRiddles))
	for level, riddles := range builtinRiddles {
		levels[level] = append([]Riddle(nil), riddles...)
	}
	return &RiddleBank{levels: levels}
}

// Level returns a copy of the riddles for the given level. The result is
// empty for levels outside [MinRiddleLevel, MaxRiddleLevel].
func (b *RiddleBank) Level(level int) []Riddle {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Riddle(nil), b.levels[level]...)
}

// Extend appends riddles to a level, skipping questions already present.
// It returns the number of riddles actually added.
func (b *RiddleBank) Extend(level int, riddles []Riddle) int {
	if level < MinRiddleLevel || level > MaxRiddleLevel {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	seen := make(map[string]struct{}, len(b.levels[level]))
	for _, r := range b.levels[level] {
		seen[r.Question] = struct{}{}
	}

	added := 0
	for _, r := range riddles {
		if r.Question == "" || len(r.Answers) == 0 {
			continue
		}
		if _, dup := seen[r.Question]; dup {
			continue
		}
		b.levels[level] = append(b.levels[level], r)
		seen[r.Question] = struct{}{}
		added++
	}
	return added
}

var builtinRiddles = map[int][]Riddle{
	1: { // basic arithmetic and common knowledge
		{Question: "Скільки буде 7 + 8?", Answers: []string{"15"}},
		{Question: "Скільки буде 10 * 5?", Answers: []string{"50"}},
		{Question: "Скільки буде 100 - 37?", Answers: []string{"63"}},
		{Question: "Скільки буде 24 / 6?", Answers: []string{"4"}},
		{Question: "Скільки днів у тижні?", Answers: []string{"7"}},
		{Question: "Скільки місяців у році?", Answers: []string{"12"}},
		{Question: "Скільки годин у добі?", Answers: []string{"24"}},
		{Question: "Скільки хвилин у годині?", Answers: []string{"60"}},
		{Question: "Скільки секунд у хвилині?", Answers: []string{"60"}},
		{Question: "Скільки сторін у квадрата?", Answers: []string{"4"}},
		{Question: "Скільки сторін у трикутника?", Answers: []string{"3"}},
		{Question: "Скільки кольорів у веселці?", Answers: []string{"7"}},
		{Question: "Яка столиця України?", Answers: []string{"київ", "kyiv", "kiev"}},
		{Question: "Який день тижня йде після понеділка?", Answers: []string{"вівторок"}},
		{Question: "Який день тижня йде після середи?", Answers: []string{"четвер"}},
		{Question: "Скільки буде 9 * 9?", Answers: []string{"81"}},
		{Question: "Скільки буде 12 * 12?", Answers: []string{"144"}},
		{Question: "Скільки пальців на двох руках?", Answers: []string{"10"}},
		{Question: "Яка валюта в Україні?", Answers: []string{"гривня", "uah", "грн"}},
		{Question: "Скільки буде 50 + 50?", Answers: []string{"100"}},
	},
	2: { // geography, basic IT
		{Question: "Скільки буде 7 * 8?", Answers: []string{"56"}},
		{Question: "Скільки буде 144 / 12?", Answers: []string{"12"}},
		{Question: "Скільки буде 15 * 15?", Answers: []string{"225"}},
		{Question: "Яка столиця Франції?", Answers: []string{"париж", "paris"}},
		{Question: "Яка столиця Німеччини?", Answers: []string{"берлін", "berlin"}},
		{Question: "Яка столиця Польщі?", Answers: []string{"варшава", "warsaw"}},
		{Question: "Яка столиця Італії?", Answers: []string{"рим", "rome", "roma"}},
		{Question: "Яка столиця Великобританії?", Answers: []string{"лондон", "london"}},
		{Question: "Скільки планет в Сонячній системі?", Answers: []string{"8"}},
		{Question: "Яка хімічна формула води?", Answers: []string{"h2o", "н2о"}},
		{Question: "Скільки градусів у прямому куті?", Answers: []string{"90"}},
		{Question: "Скільки сантиметрів у метрі?", Answers: []string{"100"}},
		{Question: "Скільки грам у кілограмі?", Answers: []string{"1000"}},
		{Question: "Скільки бітів у байті?", Answers: []string{"8"}},
		{Question: "Який порт для HTTP?", Answers: []string{"80"}},
		{Question: "Хто написав 'Кобзар'?", Answers: []string{"шевченко", "тарас шевченко"}},
		{Question: "Яка валюта в США?", Answers: []string{"долар", "dollar", "usd"}},
		{Question: "Яка валюта в Європі (ЄС)?", Answers: []string{"євро", "euro", "eur"}},
		{Question: "Скільки років у столітті?", Answers: []string{"100"}},
		{Question: "Скільки нулів у мільйоні?", Answers: []string{"6"}},
	},
	3: { // IT, history, harder arithmetic
		{Question: "Скільки буде 2^10?", Answers: []string{"1024"}},
		{Question: "Скільки буде sqrt(144)?", Answers: []string{"12"}},
		{Question: "Скільки буде 17 * 6?", Answers: []string{"102"}},
		{Question: "Скільки буде 15% від 200?", Answers: []string{"30"}},
		{Question: "Скільки байт в кілобайті?", Answers: []string{"1024"}},
		{Question: "Який порт для HTTPS?", Answers: []string{"443"}},
		{Question: "Який порт для SSH?", Answers: []string{"22"}},
		{Question: "Яка столиця Японії?", Answers: []string{"токіо", "tokyo"}},
		{Question: "Яка столиця Канади?", Answers: []string{"оттава", "ottawa"}},
		{Question: "Яка столиця Австралії?", Answers: []string{"канберра", "canberra"}},
		{Question: "Хто CEO Apple?", Answers: []string{"тім кук", "tim cook", "кук", "cook"}},
		{Question: "Хто CEO Tesla?", Answers: []string{"ілон маск", "elon musk", "маск", "musk"}},
		{Question: "В якому році Україна стала незалежною?", Answers: []string{"1991"}},
		{Question: "Яка найвища гора у світі?", Answers: []string{"еверест", "everest", "джомолунгма"}},
		{Question: "Що означає HTML?", Answers: []string{"hypertext markup language"}},
		{Question: "Що означає CSS?", Answers: []string{"cascading style sheets"}},
		{Question: "Яка мова програмування починається на 'Py'?", Answers: []string{"python", "пайтон"}},
		{Question: "Скільки градусів у колі?", Answers: []string{"360"}},
		{Question: "Яке число Пі (перші 3 цифри)?", Answers: []string{"3.14", "314"}},
		{Question: "Що повертає len('hello')?", Answers: []string{"5"}},
	},
	4: { // deeper IT, business
		{Question: "Скільки буде 2^8?", Answers: []string{"256"}},
		{Question: "Скільки буде 1024 / 2?", Answers: []string{"512"}},
		{Question: "Який результат: 10 % 3?", Answers: []string{"1"}},
		{Question: "Який результат: 10 // 3?", Answers: []string{"3"}},
		{Question: "Що означає HTTP?", Answers: []string{"hypertext transfer protocol"}},
		{Question: "Що означає API?", Answers: []string{"application programming interface"}},
		{Question: "Що означає SQL?", Answers: []string{"structured query language"}},
		{Question: "Що означає JSON?", Answers: []string{"javascript object notation"}},
		{Question: "Що означає OOP?", Answers: []string{"object oriented programming"}},
		{Question: "Що означає RAM?", Answers: []string{"random access memory"}},
		{Question: "Що означає CPU?", Answers: []string{"central processing unit"}},
		{Question: "Який рік заснування Apple?", Answers: []string{"1976"}},
		{Question: "Який рік заснування Google?", Answers: []string{"1998"}},
		{Question: "Який рік заснування Microsoft?", Answers: []string{"1975"}},
		{Question: "Хто засновник Amazon?", Answers: []string{"безос", "bezos", "джефф"}},
		{Question: "Хто CEO Microsoft?", Answers: []string{"наделла", "nadella", "сатья"}},
		{Question: "Хто створив Facebook?", Answers: []string{"цукерберг", "zuckerberg", "марк"}},
		{Question: "Яка країна виробляє Volvo?", Answers: []string{"швеція", "sweden"}},
		{Question: "Яка країна виробляє Porsche?", Answers: []string{"німеччина", "germany"}},
		{Question: "Що означає GTI у Volkswagen?", Answers: []string{"grand touring injection"}},
	},
	5: { // hardest
		{Question: "Що означає BMW (повністю)?", Answers: []string{"bayerische motoren werke"}},
		{Question: "Яка електрична модель Porsche?", Answers: []string{"taycan", "тайкан"}},
		{Question: "Скільки буде 13^2?", Answers: []string{"169"}},
		{Question: "Скільки буде sqrt(196)?", Answers: []string{"14"}},
		{Question: "Скільки буде 2^16?", Answers: []string{"65536"}},
		{Question: "Який порт для PostgreSQL за замовчуванням?", Answers: []string{"5432"}},
		{Question: "Який порт для MySQL за замовчуванням?", Answers: []string{"3306"}},
		{Question: "Який порт для MongoDB за замовчуванням?", Answers: []string{"27017"}},
		{Question: "Який порт для Redis за замовчуванням?", Answers: []string{"6379"}},
		{Question: "Що означає SOLID (перша літера)?", Answers: []string{"single responsibility"}},
		{Question: "Що означає REST?", Answers: []string{"representational state transfer"}},
		{Question: "Що означає JWT?", Answers: []string{"json web token"}},
		{Question: "Що означає CORS?", Answers: []string{"cross origin resource sharing", "cross-origin resource sharing"}},
		{Question: "Який HTTP код означає 'Not Found'?", Answers: []string{"404"}},
		{Question: "Який HTTP код означає 'Internal Server Error'?", Answers: []string{"500"}},
		{Question: "Який HTTP код означає 'Unauthorized'?", Answers: []string{"401"}},
		{Question: "Який HTTP код означає 'Created'?", Answers: []string{"201"}},
		{Question: "Яка часова складність binary search?", Answers: []string{"o(log n)", "log n", "o(logn)"}},
		{Question: "Яка часова складність bubble sort?", Answers: []string{"o(n^2)", "n^2", "o(n2)"}},
		{Question: "Що означає ACID в базах даних (перша літера)?", Answers: []string{"atomicity", "атомарність"}},
	},
}
