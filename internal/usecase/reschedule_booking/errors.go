package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда инициатор не владелец
	// бронирования и не администратор
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrInvalidStatus возвращается при попытке переноса неактивного бронирования
	ErrInvalidStatus = errors.New("reschedule_booking: only active bookings can be rescheduled")

	// ErrPastDate возвращается при попытке переноса на прошедшую дату
	ErrPastDate = errors.New("reschedule_booking: new date is in the past")

	// ErrSlotNotAvailable возвращается, когда новый интервал занят
	// или недоступен по расписанию
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
