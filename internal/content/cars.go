package content

import "math/rand"

// Car is one entry of the car catalog used by the /car command and the
// daily report.
type Car struct {
	Name     string
	HP       int
	Coolness int // 1..10
	Comment  string
}

var cars = []Car{
	{Name: "ЗАЗ-968 Запорожець", HP: 41, Coolness: 1, Comment: "Зате свій, рідний"},
	{Name: "ВАЗ-2101 Копійка", HP: 64, Coolness: 1, Comment: "Класика жанру, на ходу через раз"},
	{Name: "Daewoo Lanos", HP: 75, Coolness: 2, Comment: "Таксі твоєї мрії"},
	{Name: "ВАЗ-2109 Дев'ятка", HP: 70, Coolness: 2, Comment: "Тонована, з сабвуфером"},
	{Name: "Daewoo Matiz", HP: 51, Coolness: 2, Comment: "Паркується будь-де, їде абияк"},
	{Name: "Chevrolet Aveo", HP: 101, Coolness: 3, Comment: "Просто машина. Просто їде."},
	{Name: "Renault Logan", HP: 90, Coolness: 3, Comment: "Невбиваний, як твої дедлайни"},
	{Name: "Opel Astra G", HP: 101, Coolness: 3, Comment: "Німецька якість двадцятирічної давнини"},
	{Name: "Skoda Octavia", HP: 150, Coolness: 4, Comment: "Вибір розумного сім'янина"},
	{Name: "Volkswagen Golf", HP: 130, Coolness: 4, Comment: "Гольф — це стан душі"},
	{Name: "Toyota Corolla", HP: 132, Coolness: 4, Comment: "Переживе всіх нас"},
	{Name: "Mazda 6", HP: 194, Coolness: 5, Comment: "Майже спорткар, якщо примружитись"},
	{Name: "Honda Civic Type R", HP: 329, Coolness: 5, Comment: "VTEC kicked in yo"},
	{Name: "Subaru Impreza WRX", HP: 268, Coolness: 5, Comment: "Боксер буркотить, сусіди плачуть"},
	{Name: "Audi A6", HP: 340, Coolness: 6, Comment: "Солідно, стримано, в кредит"},
	{Name: "BMW 540i", HP: 333, Coolness: 6, Comment: "Поворотники в базовій комплектації"},
	{Name: "Mercedes-Benz E-Class", HP: 362, Coolness: 7, Comment: "Бізнес-клас для бізнес-людини"},
	{Name: "Tesla Model 3 Performance", HP: 510, Coolness: 7, Comment: "Автопілот веде, ти твітиш"},
	{Name: "Porsche 911 Carrera", HP: 385, Coolness: 8, Comment: "Мрія з дитинства, тепер твоя"},
	{Name: "BMW M5 Competition", HP: 625, Coolness: 8, Comment: "Сімейний седан, який їсть суперкари"},
	{Name: "Audi RS6 Avant", HP: 600, Coolness: 9, Comment: "Універсал, від якого тікають Ferrari"},
	{Name: "Lamborghini Huracan", HP: 640, Coolness: 9, Comment: "Сусіди вже викликали поліцію"},
	{Name: "Ferrari SF90 Stradale", HP: 1000, Coolness: 10, Comment: "Тисяча коней. Просто тисяча."},
	{Name: "Bugatti Chiron", HP: 1500, Coolness: 10, Comment: "Ти офіційно король цього чату"},
	{Name: "Koenigsegg Jesko", HP: 1600, Coolness: 10, Comment: "Швидший за твої думки про роботу"},
}

// RandomCar picks a uniformly random car from the catalog.
func RandomCar() Car {
	return cars[rand.Intn(len(cars))]
}

// CarForWorkShare picks a car for the daily report: the more work talk, the
// worse the car.
func CarForWorkShare(workPct float64) Car {
	var pool []Car
	switch {
	case workPct >= 80:
		pool = carsByCoolness(1, 2)
	case workPct >= 60:
		pool = carsByCoolness(3, 3)
	case workPct >= 40:
		pool = carsByCoolness(4, 5)
	case workPct >= 20:
		pool = carsByCoolness(6, 7)
	case workPct >= 10:
		pool = carsByCoolness(8, 9)
	default:
		pool = carsByCoolness(10, 10)
	}
	if len(pool) == 0 {
		pool = cars
	}
	return pool[rand.Intn(len(pool))]
}

func carsByCoolness(lo, hi int) []Car {
	var out []Car
	for _, c := range cars {
		if c.Coolness >= lo && c.Coolness <= hi {
			out = append(out, c)
		}
	}
	return out
}

// CoolnessEmoji maps a coolness score to its display emoji.
func CoolnessEmoji(coolness int) string {
	switch {
	case coolness >= 9:
		return "👑"
	case coolness >= 7:
		return "🔥"
	case coolness >= 5:
		return "😎"
	case coolness >= 3:
		return "🙂"
	default:
		return "🤷"
	}
}

// HPComment returns a short remark about an engine's horsepower.
func HPComment(hp int) string {
	switch {
	case hp >= 1000:
		return "це вже ракета, а не машина"
	case hp >= 600:
		return "тримайся міцніше"
	case hp >= 300:
		return "достатньо, щоб вляпатись"
	case hp >= 150:
		return "бадьоро їде"
	case hp >= 90:
		return "до магазину доїде"
	default:
		return "головне — не поспішати"
	}
}
