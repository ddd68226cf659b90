package get_available_tables

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	getAvailableTables "github.com/eatease/EatEase-BookingService/internal/usecase/get_available_tables"
)

const (
	msgInvalidVenueID    = "некорректный ID фудкорта"
	msgInvalidGuestCount = "некорректное количество гостей"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается RFC 3339"
	msgVenueNotFound     = "фудкорт не найден"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/available-tables?guests=4&from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/available-tables - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	query := r.URL.Query()

	guests, err := strconv.Atoi(query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /venues/{id}/available-tables - Invalid guests param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestCount)
		return
	}

	start, err := time.Parse(time.RFC3339, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /venues/{id}/available-tables - Invalid from param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	end, err := time.Parse(time.RFC3339, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /venues/{id}/available-tables - Invalid to param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTables.Request{
		VenueID:    venueID,
		GuestCount: guests,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTables.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/available-tables - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailableTables.ErrInvalidWindow),
			errors.Is(err, getAvailableTables.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/available-tables - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /venues/{id}/available-tables - Failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/available-tables - %d table(s) available: venue_id=%d",
		len(result.Tables), venueID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
