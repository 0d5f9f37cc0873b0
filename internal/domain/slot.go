package domain

import "github.com/avdeevlv/barber-booking-service/pkg/types"

// Slot is a bookable time interval on a given date, sized to a
// service's duration. Slots are ephemeral: computed on demand,
// never persisted.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DurationMinutes returns the slot length in minutes
func (s Slot) DurationMinutes() int {
	return s.EndTime.Minutes() - s.StartTime.Minutes()
}
