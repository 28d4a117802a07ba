package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations/models"
)

const (
	msgMissingCode = "код подтверждения обязателен"
	msgNotFound    = "бронирование не найдено"
)

// ReservationEnvelope HTTP ответ с бронированием
type ReservationEnvelope struct {
	Success     bool                        `json:"success"`
	Reservation *models.ReservationResponse `json:"reservation"`
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

// Handle GET /api/reservations/code/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	result, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /reservations/code - Not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /reservations/code - Failed: code=%s, error=%v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReservationEnvelope{
		Success:     true,
		Reservation: result,
	})
}
