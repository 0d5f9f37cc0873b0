package get_admin_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/api/handlers"
	"github.com/avdeevlv/barber-booking-service/internal/api/middleware"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/internal/service/bookings"
	"github.com/avdeevlv/barber-booking-service/internal/service/bookings/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive — все опциональны.
// date=YYYY-MM-DD — сокращение для startDate=endDate=date.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	serviceReq := &models.GetAgendaRequest{
		UserID:          userID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.StartDate = &date
		serviceReq.EndDate = &date
	} else {
		if startStr := query.Get("startDate"); startStr != "" {
			start, err := time.Parse(domain.DateFormat, startStr)
			if err != nil {
				h.logger.Warn("GET /admin/bookings - Invalid start date: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			serviceReq.StartDate = &start
		}
		if endStr := query.Get("endDate"); endStr != "" {
			end, err := time.Parse(domain.DateFormat, endStr)
			if err != nil {
				h.logger.Warn("GET /admin/bookings - Invalid end date: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			serviceReq.EndDate = &end
		}
	}

	if status := query.Get("status"); status != "" {
		serviceReq.Status = &status
	}

	result, err := h.service.GetAgenda(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to get agenda: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Agenda retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
