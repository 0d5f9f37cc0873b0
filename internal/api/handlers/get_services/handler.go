// Package get_services отдает статический каталог услуг —
// клиенту нужен прайс-лист, чтобы выбрать услугу для записи.
package get_services

import (
	"net/http"

	"github.com/avdeevlv/barber-booking-service/internal/api/handlers"
	"github.com/avdeevlv/barber-booking-service/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// ServiceResponse модель услуги каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

type Handler struct {
	catalog domain.Catalog
	logger  Logger
}

func NewHandler(catalog domain.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.All()

	services := make([]ServiceResponse, len(all))
	for i, s := range all {
		services[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}

	h.logger.Info("GET /services - Catalog retrieved: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, ServiceListResponse{Services: services})
}
