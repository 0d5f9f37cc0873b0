package models

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
)

// Request модели

// CreateBlockRequest запрос на создание блокировки.
// Для блокировки всего дня StartTime и EndTime не передаются,
// для блокировки диапазона — обязательны оба.
type CreateBlockRequest struct {
	UserID    int64     `json:"userId"`
	Date      time.Time `json:"date"`
	StartTime *string   `json:"startTime,omitempty"` // "HH:MM", nil для блокировки всего дня
	EndTime   *string   `json:"endTime,omitempty"`   // "HH:MM", nil для блокировки всего дня
	Reason    *string   `json:"reason,omitempty"`
}

// ListBlocksRequest запрос на получение блокировок за период
type ListBlocksRequest struct {
	UserID    int64      `json:"userId"`
	Date      *time.Time `json:"date,omitempty"`      // Одна дата (опционально)
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// DeleteBlockRequest запрос на удаление блокировки
type DeleteBlockRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // "2026-09-15"
	Kind      string    `json:"kind"` // "full_day" | "range"
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.AdHocBlock) *BlockResponse {
	if b == nil {
		return nil
	}

	resp := &BlockResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Kind:      string(b.Kind),
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}

	if b.StartTime != nil {
		start := b.StartTime.String()
		resp.StartTime = &start
	}
	if b.EndTime != nil {
		end := b.EndTime.String()
		resp.EndTime = &end
	}

	return resp
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.AdHocBlock) *BlockListResponse {
	result := make([]BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		if resp := FromDomainBlock(b); resp != nil {
			result = append(result, *resp)
		}
	}
	return &BlockListResponse{Blocks: result}
}
