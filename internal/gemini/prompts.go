package gemini

// RiddleGeneratorInstruction is the prompt template for riddle generation.
// Placeholders: riddle count, numeric level, level display name.
const RiddleGeneratorInstruction = `Згенеруй %d коротких запитань-загадок українською мовою для рівня складності %d (%s).

Правила:
- Запитання з однозначною короткою фактичною відповіддю: число, слово або коротка фраза.
- Теми: арифметика, загальні знання, географія, IT, технології, бізнес. Складність має відповідати рівню: 1 — шкільна база, 5 — для гіків.
- Для кожного запитання дай усі розумні варіанти написання відповіді (українською та англійською, якщо доречно), у нижньому регістрі.
- Без суб'єктивних запитань, без гри слів, без запитань довших за один рядок.`
