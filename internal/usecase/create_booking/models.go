package create_booking

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64             // ID пользователя, на которого оформляется бронирование
	ServiceID  int64             // ID услуги из каталога
	Date       time.Time         // Дата бронирования (без времени)
	StartTime  types.TimeString  // Время начала
	EndTime    *types.TimeString // Опциональное время конца; должно совпадать с start+duration
	Notes      *string           // Опциональные заметки
	ClientName *string           // Опциональное имя клиента (по умолчанию — из IdentityService)
	CreatedBy  int64             // ID инициатора (сам пользователь или администратор)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
