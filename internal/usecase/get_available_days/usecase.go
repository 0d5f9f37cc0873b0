package get_available_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/pkg/ptr"
)

// UseCase use case для получения дней месяца со свободными слотами
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	engine       AvailabilityEngine
	catalog      domain.Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	engine AvailabilityEngine,
	catalog domain.Catalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		engine:       engine,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сводки месяца.
// Блокировки и бронирования загружаются одним запросом за период и
// раскладываются по дням в памяти — без N+1 походов в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: service=%d, period=%04d-%02d",
		req.ServiceID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Ищем услугу в каталоге
	service, err := uc.catalog.ByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableDays: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: catalog lookup: %v", ErrInternal, err)
	}

	firstDay := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	// 3. Загружаем блокировки и бронирования за весь месяц
	blocks, err := uc.blockRepo.GetByPeriod(ctx, firstDay, lastDay)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(firstDay),
		EndDate:   ptr.Ptr(lastDay),
	})
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocksByDay := groupBlocksByDay(blocks)
	bookingsByDay := groupBookingsByDay(bookings)

	// 4. Прошедшие дни пропускаем — бронировать их нельзя
	today := dateOnly(uc.timeProvider.Now())

	days := make([]time.Time, 0, lastDay.Day())
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if day.Before(today) {
			continue
		}
		key := day.Format(domain.DateFormat)
		if uc.engine.HasAnySlot(day, service, blocksByDay[key], bookingsByDay[key]) {
			days = append(days, day)
		}
	}

	uc.logger.Info("GetAvailableDays: %d available days for service=%d, period=%04d-%02d",
		len(days), req.ServiceID, req.Year, req.Month)

	return &Response{
		Year:          req.Year,
		Month:         req.Month,
		ServiceID:     req.ServiceID,
		AvailableDays: days,
	}, nil
}

func groupBlocksByDay(blocks []*domain.AdHocBlock) map[string][]*domain.AdHocBlock {
	grouped := make(map[string][]*domain.AdHocBlock)
	for _, b := range blocks {
		key := b.Date.Format(domain.DateFormat)
		grouped[key] = append(grouped[key], b)
	}
	return grouped
}

func groupBookingsByDay(bookings []*domain.Booking) map[string][]*domain.Booking {
	grouped := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		key := b.BookingDate.Format(domain.DateFormat)
		grouped[key] = append(grouped[key], b)
	}
	return grouped
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
