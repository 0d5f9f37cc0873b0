package get_available_slots

import (
	"context"
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/availability"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.AdHocBlock, error)
}

// AvailabilityEngine интерфейс движка доступности
type AvailabilityEngine interface {
	GenerateSlots(date time.Time, service domain.Service, blocks []*domain.AdHocBlock, bookings []*domain.Booking) []domain.Slot
	CheckSlot(date time.Time, start, end types.TimeString, alignmentMinutes int, blocks []*domain.AdHocBlock, bookings []*domain.Booking, excludeBookingID *int64) *availability.Conflict
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
