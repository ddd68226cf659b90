package create_table

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
	msgInvalidVenueID     = "некорректный ID фудкорта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVenueNotFound      = "фудкорт не найден"
	msgMissingUser        = "отсутствует идентичность пользователя"
	msgForbidden          = "доступ запрещен"
)

// CreateTableRequest HTTP request model
type CreateTableRequest struct {
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
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

// Handle POST /api/v1/venues/{venueId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/tables - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /venues/{id}/tables - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Create(r.Context(), tables.CreateTableRequest{
		VenueID:  venueID,
		Label:    req.Label,
		Capacity: req.Capacity,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/tables - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, tables.ErrAccessDenied):
			h.logger.Warn("POST /venues/{id}/tables - Access denied: venue_id=%d, user_id=%d", venueID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/tables - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /venues/{id}/tables - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/tables - Table created: table_id=%d, venue_id=%d", table.ID, venueID)
	handlers.RespondJSON(w, http.StatusCreated, fromDomain(table))
}
