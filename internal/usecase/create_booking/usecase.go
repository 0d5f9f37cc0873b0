package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/internal/infra/storage/booking"
	"github.com/avdeevlv/barber-booking-service/internal/integrations/identity"
	"github.com/avdeevlv/barber-booking-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	engine       AvailabilityEngine
	catalog      domain.Catalog
	txManager    TxManager
	identity     IdentityClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	engine AvailabilityEngine,
	catalog domain.Catalog,
	txManager TxManager,
	identityClient IdentityClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		engine:       engine,
		catalog:      catalog,
		txManager:    txManager,
		identity:     identityClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Интервал вычисляется из каталога: конец = начало + длительность
// услуги. Если клиент прислал свой конец, он обязан совпасть с
// вычисленным — рассинхронизация каталога и клиента отклоняется,
// а не принимается молча.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%d, date=%s, start=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Создать бронирование для другого пользователя может только администратор
	if err := uc.checkActorAccess(ctx, req); err != nil {
		uc.logger.Warn("CreateBooking: actor=%d cannot book for user=%d: %v",
			req.CreatedBy, req.UserID, err)
		return nil, err
	}

	// 3. Ищем услугу в каталоге и вычисляем конец интервала
	service, err := uc.catalog.ByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: catalog lookup: %v", ErrInternal, err)
	}

	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: interval exceeds end of day", ErrInvalidInput)
	}

	if req.EndTime != nil && *req.EndTime != endTime {
		uc.logger.Warn("CreateBooking: end time mismatch: got %s, expected %s", *req.EndTime, endTime)
		return nil, fmt.Errorf("%w: end time does not match service duration", ErrInvalidInput)
	}

	// 4. Бронирование в прошлом невозможно
	if err := checkNotInPast(req.Date, req.StartTime, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Определяем имя клиента: явное из запроса или из профиля
	clientName, err := uc.resolveClientName(ctx, req)
	if err != nil {
		return nil, err
	}

	newBooking := &domain.Booking{
		UserID:       req.UserID,
		ClientName:   clientName,
		BookingDate:  req.Date,
		StartTime:    req.StartTime,
		EndTime:      endTime,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		Notes:        req.Notes,
		Status:       domain.StatusActive,
		CreatedBy:    req.CreatedBy,
	}

	// 6. Проверка доступности и вставка в одной SERIALIZABLE транзакции
	var created *domain.Booking
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		blocks, err := uc.blockRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if conflict := uc.engine.CheckSlot(req.Date, req.StartTime, endTime, service.MinAlignmentMinutes, blocks, bookings, nil); conflict != nil {
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, conflict.Describe())
		}

		created, err = uc.bookingRepo.Create(txCtx, newBooking)
		if err != nil {
			if errors.Is(err, booking.ErrSlotTaken) {
				return fmt.Errorf("%w: interval was taken concurrently", ErrSlotNotAvailable)
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: %v", txErr)
		} else {
			uc.logger.Error("CreateBooking: %v", txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("CreateBooking: created booking id=%d for user=%d, date=%s %s-%s",
		created.ID, created.UserID, created.BookingDate.Format(domain.DateFormat),
		created.StartTime, created.EndTime)

	return &Response{Booking: created}, nil
}

// checkActorAccess проверяет, что инициатор бронирует для себя
// или является администратором
func (uc *UseCase) checkActorAccess(ctx context.Context, req *Request) error {
	if req.UserID == req.CreatedBy {
		return nil
	}

	actor, err := uc.identity.GetUser(ctx, req.CreatedBy)
	if err != nil {
		uc.logger.Error("CreateBooking: identity lookup failed: %v", err)
		return fmt.Errorf("%w: identity lookup: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}

// resolveClientName возвращает имя клиента для денормализованного
// хранения в бронировании
func (uc *UseCase) resolveClientName(ctx context.Context, req *Request) (string, error) {
	if req.ClientName != nil && *req.ClientName != "" {
		return *req.ClientName, nil
	}

	user, err := uc.identity.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return "", ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: identity lookup failed: %v", err)
		return "", fmt.Errorf("%w: identity lookup: %v", ErrInternal, err)
	}

	return user.Name, nil
}
