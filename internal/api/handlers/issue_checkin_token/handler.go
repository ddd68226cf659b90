package issue_checkin_token

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	issueCheckinToken "github.com/eatease/EatEase-BookingService/internal/usecase/issue_checkin_token"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgMissingUser      = "отсутствует идентичность пользователя"
	msgForbidden        = "доступ запрещен"
	msgTooEarly         = "окно самовывоза еще не открылось"
	msgBookingEnded     = "окно бронирования уже закончилось"
	msgNotActive        = "бронирование не активно"
)

type Handler struct {
	useCase IssueCheckinTokenUseCase
	logger  Logger
}

func NewHandler(useCase IssueCheckinTokenUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/checkin-token?qr=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/checkin-token - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/checkin-token - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	withQR := r.URL.Query().Get("qr") == "true"

	result, err := h.useCase.Execute(r.Context(), &issueCheckinToken.Request{
		BookingID: bookingID,
		WithQR:    withQR,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, issueCheckinToken.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/checkin-token - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, issueCheckinToken.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/checkin-token - Access denied: booking_id=%d, user_id=%d",
				bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, issueCheckinToken.ErrTooEarly):
			h.logger.Warn("GET /bookings/{id}/checkin-token - Too early: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTooEarly)

		case errors.Is(err, issueCheckinToken.ErrBookingEnded):
			h.logger.Warn("GET /bookings/{id}/checkin-token - Booking ended: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingEnded)

		case errors.Is(err, issueCheckinToken.ErrNotActive):
			h.logger.Warn("GET /bookings/{id}/checkin-token - Booking not active: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotActive)

		case errors.Is(err, issueCheckinToken.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{id}/checkin-token - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/checkin-token - Token issued: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
