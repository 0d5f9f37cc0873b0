package get_available_days

import "time"

// Request модель запроса на получение доступных дней месяца
type Request struct {
	ServiceID int64 // ID услуги из каталога
	Year      int   // Год (например, 2026)
	Month     int   // Месяц (1-12)
}

// Response модель ответа со сводкой месяца
type Response struct {
	Year          int         // Запрошенный год
	Month         int         // Запрошенный месяц
	ServiceID     int64       // ID услуги
	AvailableDays []time.Time // Дни месяца, где есть хотя бы один свободный слот
}
