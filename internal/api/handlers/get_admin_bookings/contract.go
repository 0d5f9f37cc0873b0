package get_admin_bookings

import (
	"context"

	"github.com/avdeevlv/barber-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetAgenda(ctx context.Context, req *models.GetAgendaRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
