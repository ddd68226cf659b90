package get_venue_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/internal/domain"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidVenueID = "некорректный ID фудкорта"
	msgInvalidFilter  = "некорректный фильтр, допустимы all, today, active, inactive"
	msgVenueNotFound  = "фудкорт не найден"
	msgMissingUser    = "отсутствует идентичность пользователя"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/bookings?filter=today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/bookings - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /venues/{id}/bookings - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	filter := domain.FilterAll
	if f := r.URL.Query().Get("filter"); f != "" {
		switch domain.VenueBookingsFilter(f) {
		case domain.FilterAll, domain.FilterToday, domain.FilterActiveNow, domain.FilterInactive:
			filter = domain.VenueBookingsFilter(f)
		default:
			h.logger.Warn("GET /venues/{id}/bookings - Invalid filter: %s", f)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
	}

	list, err := h.service.GetVenueBookings(r.Context(), venueID, filter, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/bookings - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /venues/{id}/bookings - Access denied: venue_id=%d, user_id=%d", venueID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /venues/{id}/bookings - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/bookings - %d booking(s) retrieved: venue_id=%d, filter=%s",
		len(list), venueID, filter)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBookingList(list))
}
