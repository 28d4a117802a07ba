package search_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	"github.com/cazingue/BMT-ReservationService/internal/domain"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

// ListResponse HTTP ответ со списком бронирований
type ListResponse struct {
	Success      bool                         `json:"success"`
	Count        int                          `json:"count"`
	Reservations []models.ReservationResponse `json:"reservations"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/reservations/admin?date=&status=&customer_name=&customer_email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.SearchReservationsRequest{}

	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /reservations/admin - Invalid date %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if name := query.Get("customer_name"); name != "" {
		req.CustomerName = &name
	}
	if email := query.Get("customer_email"); email != "" {
		req.CustomerEmail = &email
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /reservations/admin - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /reservations/admin - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Success:      true,
		Count:        result.Count,
		Reservations: result.Reservations,
	})
}

// HandleToday GET /api/reservations/admin/today
func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetToday(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations/admin/today - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Success:      true,
		Count:        result.Count,
		Reservations: result.Reservations,
	})
}
