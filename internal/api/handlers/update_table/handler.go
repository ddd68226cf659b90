package update_table

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/internal/domain"
	"github.com/eatease/EatEase-BookingService/internal/service/tables"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "стол не найден"
	msgMissingUser        = "отсутствует идентичность пользователя"
	msgForbidden          = "доступ запрещен"
)

// UpdateTableRequest HTTP request model; отсутствующие поля не меняются
type UpdateTableRequest struct {
	Label    *string `json:"label,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

// TableResponse HTTP response model
type TableResponse struct {
	ID       int64  `json:"id"`
	VenueID  int64  `json:"venueId"`
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func fromDomain(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:        t.ID,
		VenueID:   t.VenueID,
		Label:     t.Label,
		Capacity:  t.Capacity,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /tables/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Update(r.Context(), tableID, tables.UpdateTableRequest{
		Label:    req.Label,
		Capacity: req.Capacity,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PUT /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrAccessDenied):
			h.logger.Warn("PUT /tables/{id} - Access denied: table_id=%d, user_id=%d", tableID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("PUT /tables/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /tables/{id} - Failed: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tables/{id} - Table updated: table_id=%d, admin_id=%d", tableID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(table))
}
