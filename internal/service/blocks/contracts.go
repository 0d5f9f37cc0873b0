package blocks

import (
	"context"
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/internal/integrations/identity"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, block *domain.AdHocBlock) (*domain.AdHocBlock, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.AdHocBlock, error)
	GetByPeriod(ctx context.Context, from, to time.Time) ([]*domain.AdHocBlock, error)
	Delete(ctx context.Context, id int64) error
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identity.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
