package update_venue

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/internal/domain"
	"github.com/eatease/EatEase-BookingService/internal/service/venues"
)

const (
	msgInvalidVenueID     = "некорректный ID фудкорта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "фудкорт не найден"
	msgMissingUser        = "отсутствует идентичность пользователя"
	msgForbidden          = "доступ запрещен"
)

// UpdateVenueRequest HTTP request model; отсутствующие поля не меняются
type UpdateVenueRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	City     *string `json:"city,omitempty"`
}

// VenueResponse HTTP response model
type VenueResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	City     string `json:"city"`
	AdminID  int64  `json:"adminId"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func fromDomain(v *domain.Venue) *VenueResponse {
	return &VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Location:  v.Location,
		City:      v.City,
		AdminID:   v.AdminID,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
}

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /venues/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	venue, err := h.service.Update(r.Context(), venueID, venues.UpdateVenueRequest{
		Name:     req.Name,
		Location: req.Location,
		City:     req.City,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, venues.ErrAccessDenied):
			h.logger.Warn("PUT /venues/{id} - Access denied: venue_id=%d, user_id=%d", venueID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /venues/{id} - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id} - Venue updated: venue_id=%d, admin_id=%d", venueID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(venue))
}
