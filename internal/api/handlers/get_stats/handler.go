package get_stats

import (
	"errors"
	"net/http"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings"
)

const (
	msgMissingUser = "отсутствует идентичность пользователя"
	msgForbidden   = "доступ запрещен"
)

// StatsResponse HTTP response model
type StatsResponse struct {
	ActiveBookings    int64 `json:"activeBookings"`
	TodayReservations int64 `json:"todayReservations"`
}

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

// Handle GET /api/v1/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /stats - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	stats, err := h.service.GetStats(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /stats - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /stats - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stats - Stats retrieved: active=%d, today=%d",
		stats.ActiveBookings, stats.TodayReservations)
	handlers.RespondJSON(w, http.StatusOK, StatsResponse{
		ActiveBookings:    stats.ActiveBookings,
		TodayReservations: stats.TodayReservations,
	})
}
