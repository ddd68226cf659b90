package get_next_booking

import (
	"errors"
	"net/http"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUser = "отсутствует идентичность пользователя"
	msgNoUpcoming  = "предстоящих бронирований нет"
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

// Handle GET /api/v1/bookings/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/next - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	booking, err := h.service.GetNextBooking(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Info("GET /bookings/next - No upcoming bookings: user_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgNoUpcoming)

		default:
			h.logger.Error("GET /bookings/next - Failed: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/next - Booking retrieved: booking_id=%d, user_id=%d", booking.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}
