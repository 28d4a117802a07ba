package manage_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cazingue/BMT-ReservationService/internal/api/handlers"
	"github.com/cazingue/BMT-ReservationService/internal/service/tables"
	"github.com/cazingue/BMT-ReservationService/internal/service/tables/models"
)

const (
	msgInvalidID             = "некорректный идентификатор стола"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgNotFound              = "стол не найден"
	msgDuplicateNumber       = "стол с таким номером уже существует"
	msgInvalidInput          = "некорректные данные стола"
	msgInvalidStatus         = "недопустимый статус стола"
	msgHasFutureReservations = "нельзя удалить стол с активными бронированиями"
	msgCreated               = "стол успешно создан"
	msgUpdated               = "стол успешно обновлён"
	msgStatusUpdated         = "статус стола успешно обновлён"
	msgDeleted               = "стол успешно удалён"
)

// TableEnvelope HTTP ответ со столом
type TableEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Table   *models.TableResponse `json:"table"`
}

// TableListEnvelope HTTP ответ со списком столов
type TableListEnvelope struct {
	Success bool                   `json:"success"`
	Count   int                    `json:"count"`
	Tables  []models.TableResponse `json:"tables"`
}

type Handler struct {
	service TablesService
	logger  Logger
}

func NewHandler(service TablesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/tables
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /tables - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TableListEnvelope{
		Success: true,
		Count:   result.Count,
		Tables:  result.Tables,
	})
}

// HandleGet GET /api/tables/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			h.logger.Warn("GET /tables/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /tables/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TableEnvelope{Success: true, Table: result})
}

// HandleCreate POST /api/tables
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrDuplicateNumber):
			h.logger.Warn("POST /tables - Duplicate number: number=%d", req.Number)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateNumber)

		case errors.Is(err, tables.ErrInvalidStatus):
			h.logger.Warn("POST /tables - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tables - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables - Table created: id=%d, number=%d", result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, TableEnvelope{
		Success: true,
		Message: msgCreated,
		Table:   result,
	})
}

// HandleUpdate PUT /api/tables/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PUT /tables/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrDuplicateNumber):
			h.logger.Warn("PUT /tables/{id} - Duplicate number: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateNumber)

		case errors.Is(err, tables.ErrInvalidStatus):
			h.logger.Warn("PUT /tables/{id} - Invalid status: id=%d", id)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("PUT /tables/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /tables/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tables/{id} - Table updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, TableEnvelope{
		Success: true,
		Message: msgUpdated,
		Table:   result,
	})
}

// HandleUpdateStatus PATCH /api/tables/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.UpdateTableStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PATCH /tables/{id}/status - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrInvalidStatus):
			h.logger.Warn("PATCH /tables/{id}/status - Invalid status: id=%d, status=%s", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /tables/{id}/status - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tables/{id}/status - Status updated: id=%d, status=%s", id, req.Status)
	handlers.RespondMessage(w, http.StatusOK, msgStatusUpdated)
}

// HandleDelete DELETE /api/tables/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrHasFutureReservations):
			h.logger.Warn("DELETE /tables/{id} - Has future reservations: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgHasFutureReservations)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted: id=%d", id)
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
