package domain

// Slot grid and validation constants
const (
	// SlotGridMinutes is the step of the booking grid: candidate slots
	// start every 30 minutes within the operating window.
	SlotGridMinutes = 30

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBlockReasonLength        = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих свой интервал
// при проверке пересечений
var ActiveStatuses = []BookingStatus{
	StatusActive,
}

// InactiveStatuses список терминальных статусов: такие бронирования
// сохраняются в истории, но интервал не занимают
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
