package domain

import (
	"sort"
	"time"

	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// RecurringBlock is a standing weekly reservation: a legacy client who
// holds a fixed slot on a fixed weekday, independent of calendar dates.
// Recurring blocks are configuration, not data — they cannot be created
// or removed at runtime.
type RecurringBlock struct {
	Weekday time.Weekday
	Label   string
	Start   types.TimeString
	End     types.TimeString
}

// RecurringBlockSet is the per-weekday registry of standing
// reservations. Built once at startup, immutable thereafter.
type RecurringBlockSet struct {
	byWeekday [7][]RecurringBlock
}

// NewRecurringBlockSet строит реестр из списка блоков.
// Блоки каждого дня недели упорядочиваются по времени начала.
func NewRecurringBlockSet(blocks []RecurringBlock) RecurringBlockSet {
	var set RecurringBlockSet
	for _, b := range blocks {
		set.byWeekday[int(b.Weekday)] = append(set.byWeekday[int(b.Weekday)], b)
	}
	for i := range set.byWeekday {
		sort.Slice(set.byWeekday[i], func(a, b int) bool {
			return set.byWeekday[i][a].Start.IsBefore(set.byWeekday[i][b].Start)
		})
	}
	return set
}

// BlocksFor returns the standing reservations for a weekday,
// ordered by start time. The returned slice must not be mutated.
func (s RecurringBlockSet) BlocksFor(weekday time.Weekday) []RecurringBlock {
	return s.byWeekday[int(weekday)]
}

// Overlaps reports whether [start, end) in minutes-of-day intersects
// any standing reservation on the given weekday.
func (s RecurringBlockSet) Overlaps(weekday time.Weekday, start, end int) bool {
	_, found := s.FindOverlapping(weekday, start, end)
	return found
}

// FindOverlapping returns the first standing reservation intersecting
// [start, end), for conflict diagnostics.
func (s RecurringBlockSet) FindOverlapping(weekday time.Weekday, start, end int) (RecurringBlock, bool) {
	for _, b := range s.byWeekday[int(weekday)] {
		if Overlaps(start, end, b.Start.Minutes(), b.End.Minutes()) {
			return b, true
		}
	}
	return RecurringBlock{}, false
}

// DefaultRecurringBlocks возвращает постоянных клиентов с фиксированными
// еженедельными слотами (четверг, пятница и суббота)
func DefaultRecurringBlocks() []RecurringBlock {
	return []RecurringBlock{
		{Weekday: time.Thursday, Label: "Leo", Start: "10:00", End: "11:00"},
		{Weekday: time.Thursday, Label: "Beiço", Start: "11:00", End: "11:30"},
		{Weekday: time.Thursday, Label: "Marquinhos", Start: "19:00", End: "20:00"},

		{Weekday: time.Friday, Label: "Alessandro", Start: "09:00", End: "10:00"},
		{Weekday: time.Friday, Label: "Gui", Start: "11:00", End: "11:30"},
		{Weekday: time.Friday, Label: "Gu", Start: "15:00", End: "16:00"},
		{Weekday: time.Friday, Label: "Jo", Start: "17:00", End: "18:00"},
		{Weekday: time.Friday, Label: "Negão", Start: "18:00", End: "18:30"},
		{Weekday: time.Friday, Label: "Ferrugem", Start: "18:30", End: "19:00"},

		{Weekday: time.Saturday, Label: "Dinho", Start: "09:00", End: "09:30"},
		{Weekday: time.Saturday, Label: "Bahia", Start: "10:00", End: "10:30"},
		{Weekday: time.Saturday, Label: "Gabriel", Start: "11:00", End: "11:30"},
		{Weekday: time.Saturday, Label: "Marcelinho", Start: "12:00", End: "12:30"},
		{Weekday: time.Saturday, Label: "Tiele", Start: "15:00", End: "15:30"},
		{Weekday: time.Saturday, Label: "João", Start: "16:00", End: "17:00"},
		{Weekday: time.Saturday, Label: "Vando", Start: "17:00", End: "17:30"},
	}
}
