package reschedule_booking

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID int64            // ID переносимого бронирования
	ActorID   int64            // ID инициатора (владелец или администратор)
	Date      time.Time        // Новая дата
	StartTime types.TimeString // Новое время начала
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	Booking *domain.Booking
}
