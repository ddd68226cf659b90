package delete_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID фудкорта"
	msgNotFound       = "фудкорт не найден"
	msgMissingUser    = "отсутствует идентичность пользователя"
	msgForbidden      = "доступ запрещен"
)

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

// Handle DELETE /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("DELETE /venues/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.service.Delete(r.Context(), venueID, actor); err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, venues.ErrAccessDenied):
			h.logger.Warn("DELETE /venues/{id} - Access denied: venue_id=%d, user_id=%d", venueID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /venues/{id} - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/{id} - Venue deleted: venue_id=%d, admin_id=%d", venueID, actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
