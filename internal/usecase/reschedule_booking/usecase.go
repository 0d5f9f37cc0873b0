package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/internal/infra/storage/booking"
	"github.com/avdeevlv/barber-booking-service/pkg/ptr"
)

// UseCase use case для переноса бронирования на новые дату и время
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

// Execute выполняет use case переноса бронирования.
//
// Длительность сохраняется: новый конец = новое начало + длительность
// услуги из каталога (бронирование хранит денормализованное название).
// При проверке нового интервала само переносимое бронирование
// исключается — перенос внутри своего же слота легален.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, actor=%d, date=%s, start=%s",
		req.BookingID, req.ActorID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Новая дата не может быть в прошлом
	if err := checkNotInPast(req.Date, req.StartTime, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RescheduleBooking: %v", err)
		return nil, err
	}

	var updated *domain.Booking
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Читаем бронирование с блокировкой строки
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 4. Перенести может владелец или администратор
		if err := uc.checkAccess(txCtx, current, req.ActorID); err != nil {
			return err
		}

		// 5. Переносятся только активные бронирования
		if !current.CanBeRescheduled() {
			return fmt.Errorf("%w: status is %q", ErrInvalidStatus, current.Status)
		}

		// 6. Восстанавливаем услугу по названию, чтобы сохранить
		// длительность и выравнивание
		service, err := uc.catalog.ByName(current.ServiceName)
		if err != nil {
			return fmt.Errorf("%w: service %q is no longer in the catalog", ErrInternal, current.ServiceName)
		}

		endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: interval exceeds end of day", ErrInvalidInput)
		}

		// 7. Проверяем новый интервал, исключив само бронирование
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

		if conflict := uc.engine.CheckSlot(req.Date, req.StartTime, endTime, service.MinAlignmentMinutes, blocks, bookings, ptr.Ptr(current.ID)); conflict != nil {
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, conflict.Describe())
		}

		// 8. Записываем новые дату и интервал
		if err := uc.bookingRepo.UpdateSchedule(txCtx, current.ID, req.Date, req.StartTime, endTime); err != nil {
			if errors.Is(err, booking.ErrSlotTaken) {
				return fmt.Errorf("%w: interval was taken concurrently", ErrSlotNotAvailable)
			}
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		current.BookingDate = req.Date
		current.StartTime = req.StartTime
		current.EndTime = endTime
		updated = current
		return nil
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrSlotNotAvailable),
			errors.Is(txErr, ErrBookingNotFound),
			errors.Is(txErr, ErrAccessDenied),
			errors.Is(txErr, ErrInvalidStatus):
			uc.logger.Warn("RescheduleBooking: %v", txErr)
		default:
			uc.logger.Error("RescheduleBooking: %v", txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("RescheduleBooking: booking id=%d moved to %s %s-%s",
		updated.ID, updated.BookingDate.Format(domain.DateFormat),
		updated.StartTime, updated.EndTime)

	return &Response{Booking: updated}, nil
}

// checkAccess проверяет, что инициатор — владелец бронирования или администратор
func (uc *UseCase) checkAccess(ctx context.Context, b *domain.Booking, actorID int64) error {
	if b.UserID == actorID {
		return nil
	}

	actor, err := uc.identity.GetUser(ctx, actorID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: identity lookup failed: %v", err)
		return fmt.Errorf("%w: identity lookup: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
