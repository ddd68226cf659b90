package get_venues

import (
	"net/http"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
)

const msgMissingUser = "отсутствует идентичность пользователя"

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

// Handle GET /api/v1/venues?city=...&name=...
// Публичный каталог фудкортов с опциональными фильтрами.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var city, name *string
	if c := query.Get("city"); c != "" {
		city = &c
	}
	if n := query.Get("name"); n != "" {
		name = &n
	}

	list, err := h.service.List(r.Context(), city, name)
	if err != nil {
		h.logger.Error("GET /venues - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - %d venue(s) retrieved", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainVenues(list))
}

// HandleOwned GET /api/v1/venues/mine
// Фудкорты, принадлежащие текущему пользователю.
func (h *Handler) HandleOwned(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /venues/mine - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	list, err := h.service.ListOwned(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /venues/mine - Failed: user_id=%d, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/mine - %d venue(s) retrieved: user_id=%d", len(list), actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainVenues(list))
}
