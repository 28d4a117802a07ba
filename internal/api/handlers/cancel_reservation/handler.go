package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations/models"
)

const (
	msgMissingCode  = "код подтверждения обязателен"
	msgNotFound     = "бронирование не найдено"
	msgCannotCancel = "бронирование не может быть отменено"
	msgTooLate      = "слишком поздно для отмены бронирования"
	msgCancelled    = "бронирование успешно отменено"
)

// CancelResponse HTTP ответ с отменённым бронированием
type CancelResponse struct {
	Success     bool                        `json:"success"`
	Message     string                      `json:"message"`
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

// Handle DELETE /api/reservations/code/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	result, err := h.service.Cancel(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/code - Not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("DELETE /reservations/code - Cannot cancel: code=%s", code)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrTooLateToCancel):
			h.logger.Warn("DELETE /reservations/code - Past cutoff: code=%s", code)
			handlers.RespondBadRequest(w, msgTooLate)

		default:
			h.logger.Error("DELETE /reservations/code - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/code - Reservation cancelled: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{
		Success:     true,
		Message:     msgCancelled,
		Reservation: result,
	})
}
