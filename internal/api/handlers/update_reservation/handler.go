package update_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	updateReservation "github.com/cazingue/BMT-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCode        = "код подтверждения обязателен"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgValidationFailed   = "проверка данных бронирования не пройдена"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "бронирование в финальном статусе и не может быть изменено"
	msgTooLate            = "слишком поздно для изменения бронирования"
	msgRestaurantClosed   = "ресторан закрыт по выходным, выберите будний день"
	msgDinnerNotAvailable = "ужин доступен только по четвергам"
	msgOutsideWindow      = "время бронирования вне допустимого окна"
	msgSlotUnavailable    = "выбранный временной слот недоступен, выберите другое время"
	msgUpdated            = "бронирование успешно обновлено"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/reservations/code/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/code - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(code)
	if err != nil {
		h.logger.Warn("PUT /reservations/code - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/code - Not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrForbiddenTransition):
			h.logger.Warn("PUT /reservations/code - Terminal status: code=%s", code)
			handlers.RespondBadRequest(w, msgForbidden)

		case errors.Is(err, updateReservation.ErrTooLateToModify):
			h.logger.Warn("PUT /reservations/code - Past cutoff: code=%s", code)
			handlers.RespondBadRequest(w, msgTooLate)

		case errors.Is(err, updateReservation.ErrRestaurantClosed):
			h.logger.Warn("PUT /reservations/code - Restaurant closed: code=%s", code)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, updateReservation.ErrDinnerNotAvailable):
			h.logger.Warn("PUT /reservations/code - Dinner not available: code=%s", code)
			handlers.RespondBadRequest(w, msgDinnerNotAvailable)

		case errors.Is(err, updateReservation.ErrOutsideBookingWindow):
			h.logger.Warn("PUT /reservations/code - Outside booking window: code=%s", code)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, updateReservation.ErrSlotUnavailable):
			h.logger.Warn("PUT /reservations/code - Slot unavailable: code=%s", code)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, updateReservation.ErrInvalidInput),
			errors.Is(err, updateReservation.ErrInvalidDate):
			h.logger.Warn("PUT /reservations/code - Validation failed: %v", err)
			handlers.RespondValidationErrors(w, msgValidationFailed, []string{err.Error()})

		default:
			h.logger.Error("PUT /reservations/code - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/code - Reservation updated: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgUpdated))
}
