package manage_timeslots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	"github.com/cazingue/BMT-ReservationService/internal/service/timeslots"
	"github.com/cazingue/BMT-ReservationService/internal/service/timeslots/models"
)

const (
	msgInvalidID          = "некорректный идентификатор слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "временной слот не найден"
	msgDuplicateSlot      = "слот с таким временем начала уже существует"
	msgInvalidInput       = "некорректные данные слота"
	msgInvalidService     = "неизвестный фильтр сервиса, допустимы lunch и dinner"
	msgCreated            = "временной слот успешно создан"
	msgUpdated            = "временной слот успешно обновлён"
	msgDeleted            = "временной слот успешно удалён"
)

// SlotEnvelope HTTP ответ со слотом
type SlotEnvelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	Slot    *models.TimeSlotResponse `json:"time_slot"`
}

// SlotListEnvelope HTTP ответ с каталогом слотов
type SlotListEnvelope struct {
	Success bool                      `json:"success"`
	Count   int                       `json:"count"`
	Lunch   []models.TimeSlotResponse `json:"lunch"`
	Dinner  []models.TimeSlotResponse `json:"dinner"`
}

type Handler struct {
	service TimeSlotsService
	logger  Logger
}

func NewHandler(service TimeSlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/timeslots?service=lunch|dinner&include_inactive=true
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var result *models.TimeSlotListResponse
	var err error

	switch service := r.URL.Query().Get("service"); service {
	case "":
		includeInactive := r.URL.Query().Get("include_inactive") == "true"
		result, err = h.service.List(r.Context(), includeInactive)
	case "lunch":
		result, err = h.service.ListLunch(r.Context())
	case "dinner":
		result, err = h.service.ListDinner(r.Context())
	default:
		h.logger.Warn("GET /timeslots - Unknown service filter: %s", service)
		handlers.RespondBadRequest(w, msgInvalidService)
		return
	}

	if err != nil {
		h.logger.Error("GET /timeslots - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SlotListEnvelope{
		Success: true,
		Count:   result.Count,
		Lunch:   result.Lunch,
		Dinner:  result.Dinner,
	})
}

// HandleCreate POST /api/timeslots
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timeslots.ErrDuplicateSlot):
			h.logger.Warn("POST /timeslots - Duplicate slot: start=%s", req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		case errors.Is(err, timeslots.ErrInvalidInput):
			h.logger.Warn("POST /timeslots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /timeslots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timeslots - Slot created: id=%d, start=%s", result.ID, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, SlotEnvelope{
		Success: true,
		Message: msgCreated,
		Slot:    result,
	})
}

// HandleUpdate PUT /api/timeslots/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /timeslots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, timeslots.ErrSlotNotFound):
			h.logger.Warn("PUT /timeslots/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, timeslots.ErrDuplicateSlot):
			h.logger.Warn("PUT /timeslots/{id} - Duplicate slot: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		case errors.Is(err, timeslots.ErrInvalidInput):
			h.logger.Warn("PUT /timeslots/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /timeslots/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /timeslots/{id} - Slot updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, SlotEnvelope{
		Success: true,
		Message: msgUpdated,
		Slot:    result,
	})
}

// HandleDelete DELETE /api/timeslots/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, timeslots.ErrSlotNotFound) {
			h.logger.Warn("DELETE /timeslots/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /timeslots/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /timeslots/{id} - Slot deleted: id=%d", id)
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
