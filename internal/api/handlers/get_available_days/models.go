package get_available_days

import (
	"github.com/avdeevlv/barber-booking-service/internal/domain"
	getAvailableDays "github.com/avdeevlv/barber-booking-service/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	Year          int      `json:"year"`
	Month         int      `json:"month"`
	ServiceID     int64    `json:"serviceId"`
	AvailableDays []string `json:"availableDays"` // ["2026-09-01", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]string, len(resp.AvailableDays))
	for i, day := range resp.AvailableDays {
		days[i] = day.Format(domain.DateFormat)
	}

	return &AvailableDaysResponse{
		Year:          resp.Year,
		Month:         resp.Month,
		ServiceID:     resp.ServiceID,
		AvailableDays: days,
	}
}
