package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в IdentityService
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrAccessDenied возвращается, когда не-администратор пытается
	// создать бронирование для другого пользователя
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrPastDate возвращается при попытке бронирования на прошедшую дату
	ErrPastDate = errors.New("create_booking: booking date is in the past")

	// ErrSlotNotAvailable возвращается, когда запрошенный интервал занят
	// или недоступен по расписанию
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
