package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	return nil
}

// checkNotInPast запрещает перенос на прошедшую дату, а для
// сегодняшнего дня — на уже прошедшее время начала
func checkNotInPast(date time.Time, start types.TimeString, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrPastDate
	}

	if dateOnly.Equal(nowOnly) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if start.Minutes() <= nowMinutes {
			return fmt.Errorf("%w: start time already passed today", ErrPastDate)
		}
	}

	return nil
}
