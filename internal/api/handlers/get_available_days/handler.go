package get_available_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avdeevlv/barber-booking-service/internal/api/handlers"
	getAvailableDays "github.com/avdeevlv/barber-booking-service/internal/usecase/get_available_days"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingServiceID = "ID услуги обязателен"
	msgInvalidYear      = "некорректный год"
	msgInvalidMonth     = "некорректный месяц"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-days
// Query params: serviceId (required), year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /available-days - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-days - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /available-days - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /available-days - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDays.Request{
		ServiceID: serviceID,
		Year:      year,
		Month:     month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrServiceNotFound):
			h.logger.Warn("GET /available-days - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /available-days - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-days - Failed to get days: service_id=%d, period=%d-%d, error=%v",
				serviceID, year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-days - Days retrieved successfully: service_id=%d, period=%d-%d, days_count=%d",
		serviceID, year, month, len(result.AvailableDays))
	handlers.RespondJSON(w, http.StatusOK, response)
}
