package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	"github.com/cazingue/BMT-ReservationService/internal/domain"
	getAvailability "github.com/cazingue/BMT-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidDate      = "некорректная дата, ожидается формат YYYY-MM-DD и дата не в прошлом"
	msgInvalidPartySize = "количество гостей должно быть от 1 до 20"

	// Размер группы по умолчанию, если параметр не передан
	defaultPartySize = 2
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/reservations/availability?date=YYYY-MM-DD&party_size=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /reservations/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize := defaultPartySize
	if sizeStr := r.URL.Query().Get("party_size"); sizeStr != "" {
		partySize, err = strconv.Atoi(sizeStr)
		if err != nil {
			h.logger.Warn("GET /reservations/availability - Invalid party_size %q", sizeStr)
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:      date,
		PartySize: partySize,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /reservations/availability - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /reservations/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		default:
			h.logger.Error("GET /reservations/availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
