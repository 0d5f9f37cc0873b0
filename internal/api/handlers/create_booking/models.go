package create_booking

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	createBooking "github.com/avdeevlv/barber-booking-service/internal/usecase/create_booking"
	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model.
// UserID опционален: администратор может создать бронирование для
// другого пользователя, обычный клиент — только для себя.
type CreateBookingRequest struct {
	UserID      *int64  `json:"userId,omitempty"`
	ServiceID   int64   `json:"serviceId"`
	BookingDate string  `json:"bookingDate"` // "2026-09-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     *string `json:"endTime,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	ClientName   string  `json:"clientName"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Notes        *string `json:"notes,omitempty"`
	CreatedBy    int64   `json:"createdBy"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// actorID — аутентифицированный пользователь из заголовка X-User-ID.
func (r *CreateBookingRequest) ToUseCaseRequest(actorID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	var endTime *types.TimeString
	if r.EndTime != nil {
		parsed, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		endTime = &parsed
	}

	userID := actorID
	if r.UserID != nil {
		userID = *r.UserID
	}

	return &createBooking.Request{
		UserID:     userID,
		ServiceID:  r.ServiceID,
		Date:       bookingDate,
		StartTime:  startTime,
		EndTime:    endTime,
		Notes:      r.Notes,
		ClientName: r.ClientName,
		CreatedBy:  actorID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		ClientName:   b.ClientName,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		Status:       string(b.Status),
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		Notes:        b.Notes,
		CreatedBy:    b.CreatedBy,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
