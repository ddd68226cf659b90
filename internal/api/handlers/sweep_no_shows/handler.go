package sweep_no_shows

import (
	"net/http"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	"github.com/eatease/EatEase-BookingService/pkg/metrics"
)

const (
	msgMissingUser = "отсутствует идентичность пользователя"
	msgForbidden   = "доступ запрещен"
)

// SweepResponse HTTP response model
type SweepResponse struct {
	Swept int64 `json:"swept"`
}

type Handler struct {
	service BookingService
	metrics *metrics.Metrics
	logger  Logger
}

// NewHandler создает обработчик ручного запуска свипера. Метрики опциональны (nil).
func NewHandler(service BookingService, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/sweep-no-shows
// Ручной запуск перевода просроченных booked-бронирований в no_show.
// Фоновый свипер делает то же самое по расписанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/sweep-no-shows - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if !actor.IsAdmin() {
		h.logger.Warn("POST /bookings/sweep-no-shows - Access denied: user_id=%d", actor.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	swept, err := h.service.SweepNoShows(r.Context())
	if err != nil {
		h.logger.Error("POST /bookings/sweep-no-shows - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	if h.metrics != nil && swept > 0 {
		h.metrics.NoShowsSweptTotal.WithLabelValues("manual").Add(float64(swept))
	}

	h.logger.Info("POST /bookings/sweep-no-shows - %d booking(s) marked no_show by admin_id=%d", swept, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, SweepResponse{Swept: swept})
}
