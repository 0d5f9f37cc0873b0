package get_available_slots

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги из каталога
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ServiceID       int64     // ID услуги
	ServiceName     string    // Название услуги
	DurationMinutes int       // Длительность услуги в минутах
	Slots           []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота
}
