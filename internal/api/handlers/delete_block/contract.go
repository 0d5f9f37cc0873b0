package delete_block

import (
	"context"

	"github.com/avdeevlv/barber-booking-service/internal/service/blocks/models"
)

type BlockService interface {
	Delete(ctx context.Context, blockID int64, req *models.DeleteBlockRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
