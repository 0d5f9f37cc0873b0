// Package availability реализует движок доступности: генерацию
// свободных слотов на дату и проверку одного интервала-кандидата.
//
// Движок чистый: не делает I/O, не хранит изменяемого состояния и
// безопасен для параллельных вызовов. Блокировки и бронирования
// подаются вызывающим кодом, статическое расписание и постоянные
// клиенты инжектируются при создании.
package availability

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// Engine движок доступности
type Engine struct {
	schedule  domain.WeekSchedule
	recurring domain.RecurringBlockSet
}

// NewEngine создает движок с иммутабельной конфигурацией расписания
func NewEngine(schedule domain.WeekSchedule, recurring domain.RecurringBlockSet) *Engine {
	return &Engine{
		schedule:  schedule,
		recurring: recurring,
	}
}

// GenerateSlots возвращает свободные слоты на дату для услуги,
// в порядке возрастания времени начала.
//
// Кандидаты перебираются по 30-минутной сетке от открытия до
// закрытие−длительность включительно; каждый проверяется теми же
// правилами, что и CheckSlot. Функция детерминирована: повторный
// вызов с теми же входами дает тот же результат.
func (e *Engine) GenerateSlots(
	date time.Time,
	service domain.Service,
	blocks []*domain.AdHocBlock,
	bookings []*domain.Booking,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	window := e.schedule.OperatingWindow(date)
	if window == nil {
		return slots
	}

	if domain.HasFullDayBlock(blocks) {
		return slots
	}

	duration := service.DurationMinutes
	lastStart := window.End.Minutes() - duration

	for start := window.Start.Minutes(); start <= lastStart; start += domain.SlotGridMinutes {
		end := start + duration
		if conflict := e.checkInterval(date, start, end, service.MinAlignmentMinutes, blocks, bookings, nil); conflict != nil {
			continue
		}

		startTS, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			continue
		}
		endTS, err := types.NewTimeStringFromMinutes(end)
		if err != nil {
			continue
		}
		slots = append(slots, domain.Slot{StartTime: startTS, EndTime: endTS})
	}

	return slots
}

// CheckSlot проверяет один интервал-кандидат. Возвращает nil, если
// интервал свободен, иначе — конфликт с указанием занимающего
// бронирования или блокировки.
//
// excludeBookingID исключает бронирование из проверки пересечений —
// используется при переносе, чтобы бронирование не конфликтовало
// само с собой.
func (e *Engine) CheckSlot(
	date time.Time,
	start, end types.TimeString,
	alignmentMinutes int,
	blocks []*domain.AdHocBlock,
	bookings []*domain.Booking,
	excludeBookingID *int64,
) *Conflict {
	if !e.schedule.IsOpen(date) {
		return &Conflict{Reason: ReasonClosed}
	}

	for _, b := range blocks {
		if b.IsFullDay() {
			return &Conflict{Reason: ReasonFullDayBlock, Block: b}
		}
	}

	return e.checkInterval(date, start.Minutes(), end.Minutes(), alignmentMinutes, blocks, bookings, excludeBookingID)
}

// checkInterval выполняет проверки 4a-4d для одного интервала в минутах.
// Предполагает, что день открыт и не закрыт блокировкой целиком.
func (e *Engine) checkInterval(
	date time.Time,
	start, end int,
	alignmentMinutes int,
	blocks []*domain.AdHocBlock,
	bookings []*domain.Booking,
	excludeBookingID *int64,
) *Conflict {
	window := e.schedule.OperatingWindow(date)
	if window == nil {
		return &Conflict{Reason: ReasonClosed}
	}

	// Выравнивание начала (minAlignmentMinutes услуги)
	if alignmentMinutes > 0 && start%alignmentMinutes != 0 {
		return &Conflict{Reason: ReasonMisaligned}
	}

	// Конец интервала не должен выходить за закрытие
	if end > window.End.Minutes() {
		return &Conflict{Reason: ReasonOutsideWindow}
	}

	// Каждый 30-минутный под-шаг интервала обязан лежать внутри окна
	// и вне перерыва — так услуга не может "перешагнуть" обед
	for m := start; m < end; m += domain.SlotGridMinutes {
		if !window.Contains(m) {
			return &Conflict{Reason: ReasonOutsideWindow}
		}
	}

	// Постоянные еженедельные клиенты
	if rb, found := e.recurring.FindOverlapping(date.Weekday(), start, end); found {
		return &Conflict{Reason: ReasonRecurringBlock, RecurringLabel: rb.Label}
	}

	// Блокировки администратора на дату
	for _, b := range blocks {
		if b.OverlapsInterval(start, end) {
			reason := ReasonAdHocBlock
			if b.IsFullDay() {
				reason = ReasonFullDayBlock
			}
			return &Conflict{Reason: reason, Block: b}
		}
	}

	// Активные бронирования; отмененные и завершенные интервал не занимают
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		if domain.Overlaps(start, end, booking.StartTime.Minutes(), booking.EndTime.Minutes()) {
			return &Conflict{Reason: ReasonBookingOverlap, Booking: booking}
		}
	}

	return nil
}

// HasAnySlot сообщает, остался ли на дату хотя бы один свободный слот
// для услуги. Используется месячной сводкой календаря.
func (e *Engine) HasAnySlot(
	date time.Time,
	service domain.Service,
	blocks []*domain.AdHocBlock,
	bookings []*domain.Booking,
) bool {
	return len(e.GenerateSlots(date, service, blocks, bookings)) > 0
}
