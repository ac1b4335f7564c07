package content

import (
	"fmt"
	"math/rand"
)

// workReplies are sent when a message is classified as work talk with high
// confidence.
var workReplies = []string{
	"А, хтось знову не може відпустити роботу навіть у чаті 🤡",
	"Так, ми всі вражені твоєю зайнятістю. Ні, насправді ні.",
	"Чат для відпочинку, а не для твоїх робочих драм",
	"Ти взагалі вмієш говорити про щось крім роботи?",
	"Вау, робота. Як оригінально. Всім дуже цікаво.",
	"Хтось явно не вміє відділяти роботу від життя",
	"Знову ця корпоративна нудьга в чаті...",
	"Ми зрозуміли, ти працюєш. Можна далі жити?",
	"Робота-робота... А особистість у тебе є?",
	"Чергова робоча тема? Як несподівано від тебе.",
	"Ти на годиннику чи просто не можеш зупинитись?",
	"Слухай, є інші теми для розмов. Google допоможе.",
	"А ні, знову хтось важливий зі своєю важливою роботою",
	"Так, так, дедлайни, мітинги, ми в захваті. Далі що?",
	"Може краще в робочий чат? Або в щоденник?",
	"Друже, це чат, а не твій LinkedIn",
	"Знову робочі проблеми? Психотерапевт дешевший",
	"Цікаво, ти й уві сні про роботу говориш?",
	"Нагадую: тут люди відпочивають від роботи. Ну, крім тебе.",
	"Ого, ще одне повідомлення про роботу! Який сюрприз!",
	"Може хоч раз поговоримо про щось людське?",
	"Твій роботодавець не платить за рекламу в цьому чаті",
	"Роботоголізм — це діагноз, до речі",
	"Дивно, що ти ще не створив окремий чат для своїх тікетів",
	"О, знову ти зі своїми важливими справами. Фанфари!",
	"Тут є правило: хто пише про роботу — той лох",
	"Знаєш що крутіше за роботу? Буквально все.",
	"А ти точно не бот? Бо тільки боти так багато про роботу",
	"Ми не твої колеги, можеш розслабитись",
	"Хтось забув вимкнути робочий режим 🙄",
}

// RandomWorkReply picks a random teasing reply for work talk.
func RandomWorkReply() string {
	return workReplies[rand.Intn(len(workReplies))]
}

// Roast and compliment templates take the target's name via %s.
var roasts = []string{
	"%s, твій код рев'ювлять тільки з ввімкненим режимом інкогніто",
	"%s, ти як merge conflict — нікому не потрібен, але завжди з'являєшся",
	"%s, навіть Internet Explorer швидший за тебе",
	"%s, твої жарти як прод у п'ятницю — краще б їх не було",
	"%s, тебе забанили навіть у черзі до холодильника",
	"%s виглядає як стокове фото до слова 'посередність'",
	"%s, у тебе харизма порожнього JSON-а: {}",
	"%s, твій стиль — це 404 Not Found",
	"%s, ти єдина людина, яку автокорект виправляє повністю",
	"%s, навіть капча сумнівається, що ти людина",
	"%s, твоя продуктивність як Wi-Fi у поїзді",
	"%s, ти доказ того, що еволюція вміє робити паузи",
	"%s, з тобою цікаво як з інструкцією до мікрохвильовки",
	"%s, твій смак обирав рандомайзер",
	"%s, ти як застарілий браузер — всі просять тебе оновитись",
}

var compliments = []string{
	"%s, ти компілюєшся з першого разу!",
	"%s, твоя усмішка яскравіша за монітор на максимальній яскравості",
	"%s, з тобою навіть понеділок стає п'ятницею",
	"%s, ти як безкоштовна кава в офісі — всіх ощасливлюєш",
	"%s, твій вайб чистіший за свіжий git clone",
	"%s, ти легенда цього чату і це офіційно",
	"%s, поруч з тобою навіть баги стають фічами",
	"%s, твоя енергія заряджає краще за пауербанк",
	"%s, ти доказ того, що ідеальні люди існують",
	"%s, з тобою будь-який чат стає кращим місцем",
	"%s, ти як стабільний інтернет — рідкісний і цінний",
	"%s, твої ідеї свіжіші за ранковий деплой",
	"%s, ти розумніший за автодоповнення",
	"%s, твоя доброта не влазить в int64",
	"%s, ти сонечко, і це не обговорюється",
}

// RandomRoast formats a random roast aimed at name.
func RandomRoast(name string) string {
	return fmt.Sprintf(roasts[rand.Intn(len(roasts))], name)
}

// RandomCompliment formats a random compliment aimed at name.
func RandomCompliment(name string) string {
	return fmt.Sprintf(compliments[rand.Intn(len(compliments))], name)
}
