package create_booking

import (
	"context"
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/availability"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/internal/integrations/identity"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.AdHocBlock, error)
}

// AvailabilityEngine интерфейс движка доступности
type AvailabilityEngine interface {
	CheckSlot(date time.Time, start, end types.TimeString, alignmentMinutes int, blocks []*domain.AdHocBlock, bookings []*domain.Booking, excludeBookingID *int64) *availability.Conflict
}

// TxManager интерфейс менеджера транзакций.
// Проверка и вставка выполняются в одной SERIALIZABLE транзакции:
// перепроверка в памяти и exclusion constraint в схеме закрывают
// гонку конкурентных созданий с двух сторон.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identity.User, error)
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
