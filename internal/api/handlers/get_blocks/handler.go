package get_blocks

import (
	"errors"
	"net/http"
	"time"

	"github.com/avdeevlv/barber-booking-service/internal/api/handlers"
	"github.com/avdeevlv/barber-booking-service/internal/api/middleware"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
	"github.com/avdeevlv/barber-booking-service/internal/service/blocks"
	"github.com/avdeevlv/barber-booking-service/internal/service/blocks/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "необходимо указать date либо startDate и endDate"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/blocks
// Query params: date (YYYY-MM-DD) либо startDate+endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq := &models.ListBlocksRequest{UserID: userID}

	parseDate := func(value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		parsed, err := time.Parse(domain.DateFormat, value)
		if err != nil {
			return nil, err
		}
		return &parsed, nil
	}

	var err error
	if serviceReq.Date, err = parseDate(query.Get("date")); err != nil {
		h.logger.Warn("GET /admin/blocks - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if serviceReq.StartDate, err = parseDate(query.Get("startDate")); err != nil {
		h.logger.Warn("GET /admin/blocks - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if serviceReq.EndDate, err = parseDate(query.Get("endDate")); err != nil {
		h.logger.Warn("GET /admin/blocks - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrAccessDenied):
			h.logger.Warn("GET /admin/blocks - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("GET /admin/blocks - Invalid filter: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/blocks - Failed to list blocks: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/blocks - Blocks retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
