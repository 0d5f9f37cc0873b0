package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/pkg/ptr"
)

// UseCase use case для получения доступных слотов на дату
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

// Execute выполняет use case получения доступных слотов.
// Результат детерминирован: повторный вызов с теми же входами и тем же
// состоянием хранилища возвращает ту же последовательность слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Ищем услугу в каталоге
	service, err := uc.catalog.ByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: catalog lookup: %v", ErrInternal, err)
	}
	if err := service.Validate(); err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid catalog entry id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	emptyResponse := &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}

	// 3. Прошедшие даты не бронируются — пустой список без похода в БД
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 4. Получаем блокировки администратора на дату
	blocks, err := uc.blockRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем свободные слоты
	slots := uc.engine.GenerateSlots(req.Date, service, blocks, bookings)

	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{StartTime: s.StartTime, EndTime: s.EndTime}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(result), req.ServiceID, req.Date.Format(domain.DateFormat))

	emptyResponse.Slots = result
	return emptyResponse, nil
}
