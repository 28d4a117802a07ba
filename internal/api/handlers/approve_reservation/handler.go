package approve_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	approveReservation "github.com/cazingue/BMT-ReservationService/internal/usecase/approve_reservation"
)

const (
	msgInvalidID        = "некорректный идентификатор бронирования"
	msgNotFound         = "бронирование не найдено"
	msgNotPending       = "подтвердить можно только бронирование в статусе pending"
	msgNoTableAvailable = "нет свободного стола для этого бронирования"
	msgApproved         = "бронирование успешно подтверждено"
)

type Handler struct {
	useCase ApproveReservationUseCase
	logger  Logger
}

func NewHandler(useCase ApproveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations/admin/{id}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveReservation.Request{
		ReservationID: id,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/admin/{id}/approve - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveReservation.ErrNotPending):
			h.logger.Warn("POST /reservations/admin/{id}/approve - Not pending: id=%d", id)
			handlers.RespondBadRequest(w, msgNotPending)

		case errors.Is(err, approveReservation.ErrNoTableAvailable):
			h.logger.Warn("POST /reservations/admin/{id}/approve - No table: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgNoTableAvailable)

		default:
			h.logger.Error("POST /reservations/admin/{id}/approve - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/admin/{id}/approve - Approved: id=%d, table=%v",
		result.ID, result.TableNumber)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgApproved))
}
