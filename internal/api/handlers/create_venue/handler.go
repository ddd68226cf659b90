package create_venue

import (
	"errors"
	"net/http"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/internal/service/venues"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "отсутствует идентичность пользователя"
	msgForbidden          = "создавать фудкорты может только администратор"
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

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /venues - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	venue, err := h.service.Create(r.Context(), venues.CreateVenueRequest{
		Name:     req.Name,
		Location: req.Location,
		City:     req.City,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrAccessDenied):
			h.logger.Warn("POST /venues - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("POST /venues - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /venues - Failed: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created: venue_id=%d, admin_id=%d", venue.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainVenue(venue))
}
