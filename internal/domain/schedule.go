package domain

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// BreakWindow is a midday pause inside an operating window during
// which no slot minute may fall (half-open [Start, End)).
type BreakWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// OperatingWindow describes the shop hours for a single weekday.
// Break is optional. Times are wall-clock HH:MM on the slot grid.
type OperatingWindow struct {
	Start types.TimeString
	End   types.TimeString
	Break *BreakWindow
}

// Contains reports whether the given minute-of-day lies inside the
// window [Start, End) and outside the break, if any.
func (w OperatingWindow) Contains(minute int) bool {
	if minute < w.Start.Minutes() || minute >= w.End.Minutes() {
		return false
	}
	if w.Break != nil && minute >= w.Break.Start.Minutes() && minute < w.Break.End.Minutes() {
		return false
	}
	return true
}

// WeekSchedule is the static per-weekday operating hours table.
// A nil entry means the shop is closed that day. The table is built
// once at startup and never mutated; lookups are pure.
type WeekSchedule [7]*OperatingWindow

// OperatingWindow returns the window for the date's weekday,
// or nil when the shop is closed that day.
func (s WeekSchedule) OperatingWindow(date time.Time) *OperatingWindow {
	return s[int(date.Weekday())]
}

// IsOpen reports whether the shop is open at all on the given date
func (s WeekSchedule) IsOpen(date time.Time) bool {
	return s.OperatingWindow(date) != nil
}

// IsWithinWindow reports whether the given minute-of-day is inside the
// date's operating window and outside its break
func (s WeekSchedule) IsWithinWindow(date time.Time, minute int) bool {
	w := s.OperatingWindow(date)
	return w != nil && w.Contains(minute)
}

// DefaultWeekSchedule возвращает расписание работы барбершопа.
// Воскресенье — выходной, понедельник — сокращенный день без перерыва,
// вторник-суббота — полный день с перерывом на обед.
func DefaultWeekSchedule() WeekSchedule {
	full := func() *OperatingWindow {
		return &OperatingWindow{
			Start: "09:00",
			End:   "20:00",
			Break: &BreakWindow{Start: "13:00", End: "15:00"},
		}
	}

	return WeekSchedule{
		time.Sunday:    nil,
		time.Monday:    {Start: "15:00", End: "19:00"},
		time.Tuesday:   full(),
		time.Wednesday: full(),
		time.Thursday:  full(),
		time.Friday:    full(),
		time.Saturday:  full(),
	}
}
