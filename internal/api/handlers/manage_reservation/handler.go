package manage_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations"
	"github.com/cazingue/BMT-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidID          = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgInvalidStatus      = "недопустимый статус бронирования"
	msgForbidden          = "недопустимое изменение бронирования в текущем статусе"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUpdated            = "бронирование успешно обновлено"
	msgDeleted            = "бронирование успешно удалено"
)

// ReservationEnvelope HTTP ответ с бронированием
type ReservationEnvelope struct {
	Success     bool                        `json:"success"`
	Message     string                      `json:"message,omitempty"`
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

// HandleGet GET /api/reservations/admin/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /reservations/admin/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /reservations/admin/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReservationEnvelope{
		Success:     true,
		Reservation: result,
	})
}

// HandleUpdate PUT /api/reservations/admin/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.AdminUpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/admin/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AdminUpdate(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/admin/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("PUT /reservations/admin/{id} - Invalid status: id=%d", id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrForbiddenTransition):
			h.logger.Warn("PUT /reservations/admin/{id} - Forbidden transition: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/admin/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/admin/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/admin/{id} - Reservation updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, ReservationEnvelope{
		Success:     true,
		Message:     msgUpdated,
		Reservation: result,
	})
}

// HandleDelete DELETE /api/reservations/admin/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("DELETE /reservations/admin/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /reservations/admin/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations/admin/{id} - Reservation deleted: id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}
