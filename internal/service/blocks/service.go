package blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	blockRepo "github.com/avdeevlv/barber-booking-service/internal/infra/storage/block"
	"github.com/avdeevlv/barber-booking-service/internal/service/blocks/models"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// Service сервис для работы с блокировками администратора.
// Блокировки делают интервал или весь день недоступным для записи,
// не затрагивая уже созданные бронирования.
type Service struct {
	blockRepo BlockRepository
	identity  IdentityClient
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockRepo BlockRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		blockRepo: blockRepo,
		identity:  identityClient,
		logger:    logger,
	}
}

// Create создает блокировку на дату
// Доступно только администратору. Без StartTime/EndTime блокируется
// весь день, с ними — диапазон [StartTime, EndTime).
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("Create: creating block for date=%s by user=%d",
		req.Date.Format(domain.DateFormat), req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	block, err := s.buildBlock(req)
	if err != nil {
		s.logger.Warn("Create: invalid block request: %v", err)
		return nil, err
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created block id=%d for date=%s",
		created.ID, created.Date.Format(domain.DateFormat))
	return models.FromDomainBlock(created), nil
}

// List получает блокировки на дату или за период
// Доступно только администратору
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	s.logger.Info("List: fetching blocks for user=%d", req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	var (
		blocks []*domain.AdHocBlock
		err    error
	)

	switch {
	case req.Date != nil:
		blocks, err = s.blockRepo.GetByDate(ctx, *req.Date)
	case req.StartDate != nil && req.EndDate != nil:
		if req.EndDate.Before(*req.StartDate) {
			return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
		}
		blocks, err = s.blockRepo.GetByPeriod(ctx, *req.StartDate, *req.EndDate)
	default:
		return nil, fmt.Errorf("%w: either date or period is required", ErrInvalidInput)
	}

	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d blocks", len(blocks))
	return models.FromDomainBlockList(blocks), nil
}

// Delete удаляет блокировку — единственный способ снять её
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, blockID int64, req *models.DeleteBlockRequest) error {
	s.logger.Info("Delete: deleting block id=%d by user=%d", blockID, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return err
	}

	if err := s.blockRepo.Delete(ctx, blockID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found", blockID)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted block id=%d", blockID)
	return nil
}

// Вспомогательные методы

// buildBlock валидирует запрос и собирает domain модель блокировки
func (s *Service) buildBlock(req *models.CreateBlockRequest) (*domain.AdHocBlock, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}

	block := &domain.AdHocBlock{
		Date:      req.Date,
		Reason:    req.Reason,
		CreatedBy: req.UserID,
	}

	// Оба времени отсутствуют — блокировка всего дня
	if req.StartTime == nil && req.EndTime == nil {
		block.Kind = domain.BlockFullDay
		return block, nil
	}

	if req.StartTime == nil || req.EndTime == nil {
		return nil, fmt.Errorf("%w: startTime and endTime must be provided together", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(*req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(*req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	block.Kind = domain.BlockRange
	block.StartTime = &start
	block.EndTime = &end
	return block, nil
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.identity.GetUser(ctx, userID)
	if err != nil {
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user=%d is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}
