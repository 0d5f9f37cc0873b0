package availability

import (
	"fmt"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
)

// ConflictReason причина, по которой интервал недоступен
type ConflictReason string

const (
	// ReasonClosed — барбершоп не работает в эту дату
	ReasonClosed ConflictReason = "closed"
	// ReasonOutsideWindow — интервал выходит за рабочие часы или попадает в перерыв
	ReasonOutsideWindow ConflictReason = "outside_window"
	// ReasonMisaligned — начало интервала нарушает выравнивание услуги
	ReasonMisaligned ConflictReason = "misaligned"
	// ReasonFullDayBlock — день целиком закрыт администратором
	ReasonFullDayBlock ConflictReason = "full_day_block"
	// ReasonAdHocBlock — интервал пересекается с блокировкой на дату
	ReasonAdHocBlock ConflictReason = "ad_hoc_block"
	// ReasonRecurringBlock — интервал пересекается с постоянным еженедельным клиентом
	ReasonRecurringBlock ConflictReason = "recurring_block"
	// ReasonBookingOverlap — интервал пересекается с активным бронированием
	ReasonBookingOverlap ConflictReason = "booking_overlap"
)

// Conflict описывает, чем именно занят проверяемый интервал.
// Ровно одно из полей Booking/Block/RecurringLabel заполнено —
// в зависимости от Reason.
type Conflict struct {
	Reason         ConflictReason
	Booking        *domain.Booking
	Block          *domain.AdHocBlock
	RecurringLabel string
}

// Describe возвращает человекочитаемое описание конфликта для
// диагностики и сообщений клиенту
func (c *Conflict) Describe() string {
	switch c.Reason {
	case ReasonClosed:
		return "the shop is closed on this date"
	case ReasonOutsideWindow:
		return "the interval is outside the operating window"
	case ReasonMisaligned:
		return "the start time violates the service alignment"
	case ReasonFullDayBlock:
		return "the whole day is blocked"
	case ReasonAdHocBlock:
		if c.Block != nil && c.Block.Reason != nil {
			return fmt.Sprintf("the interval is blocked: %s", *c.Block.Reason)
		}
		return "the interval is blocked"
	case ReasonRecurringBlock:
		return fmt.Sprintf("the interval is reserved for a standing client (%s)", c.RecurringLabel)
	case ReasonBookingOverlap:
		if c.Booking != nil {
			return fmt.Sprintf("the interval is taken by booking id=%d (%s-%s)",
				c.Booking.ID, c.Booking.StartTime, c.Booking.EndTime)
		}
		return "the interval is taken by another booking"
	default:
		return "the interval is not available"
	}
}
