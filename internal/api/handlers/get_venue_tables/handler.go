package get_venue_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/service/tables"
)

const (
	msgInvalidVenueID = "некорректный ID фудкорта"
	msgVenueNotFound  = "фудкорт не найден"
)

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

// Handle GET /api/v1/venues/{venueId}/tables?occupancy=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/tables - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	withOccupancy := r.URL.Query().Get("occupancy") == "true"

	var resp *TableListResponse
	if withOccupancy {
		list, listErr := h.service.ListByVenueWithStatus(r.Context(), venueID)
		err = listErr
		if err == nil {
			resp = FromDomainTableStatuses(list)
		}
	} else {
		list, listErr := h.service.ListByVenue(r.Context(), venueID)
		err = listErr
		if err == nil {
			resp = FromDomainTables(list)
		}
	}

	if err != nil {
		switch {
		case errors.Is(err, tables.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/tables - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id}/tables - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/tables - %d table(s) retrieved: venue_id=%d", len(resp.Tables), venueID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
