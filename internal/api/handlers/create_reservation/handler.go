package create_reservation

import (
	"errors"
	"net/http"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	createReservation "github.com/cazingue/BMT-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "проверка данных бронирования не пройдена"
	msgRestaurantClosed   = "ресторан закрыт по выходным, выберите будний день"
	msgDinnerNotAvailable = "ужин доступен только по четвергам"
	msgOutsideWindow      = "время бронирования вне допустимого окна"
	msgSlotUnavailable    = "выбранный временной слот недоступен, выберите другое время"
	msgCreated            = "бронирование успешно создано"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrRestaurantClosed):
			h.logger.Warn("POST /reservations - Restaurant closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createReservation.ErrDinnerNotAvailable):
			h.logger.Warn("POST /reservations - Dinner not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgDinnerNotAvailable)

		case errors.Is(err, createReservation.ErrOutsideBookingWindow):
			h.logger.Warn("POST /reservations - Outside booking window: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createReservation.ErrInvalidDate),
			errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondValidationErrors(w, msgValidationFailed, []string{err.Error()})

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, code=%s",
		result.ID, result.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, msgCreated))
}
