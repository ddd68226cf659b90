package checkin_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings/models"
	"github.com/eatease/EatEase-BookingService/pkg/checkintoken"
	"github.com/eatease/EatEase-BookingService/pkg/metrics"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidToken       = "чекин-токен недействителен"
	msgExpiredToken       = "срок действия чекин-токена истек"
	msgTokenMismatch      = "чекин-токен выдан для другого бронирования"
	msgNotFound           = "бронирование не найдено"
	msgNotCheckInable     = "чекин доступен только для бронирования в статусе booked"
	msgTooEarly           = "окно самовывоза еще не открылось"
	msgClosed             = "окно бронирования уже закончилось"
)

type Handler struct {
	service  BookingService
	verifier TokenVerifier
	metrics  *metrics.Metrics
	logger   Logger
}

// NewHandler создает обработчик чекина. Метрики опциональны (nil).
func NewHandler(service BookingService, verifier TokenVerifier, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		service:  service,
		verifier: verifier,
		metrics:  m,
		logger:   logger,
	}
}

func (h *Handler) countResult(result string) {
	if h.metrics != nil {
		h.metrics.CheckInsTotal.WithLabelValues(result).Inc()
	}
}

// Handle POST /api/v1/bookings/{bookingId}/checkin
// Вызывается терминалом фудкорта после сканирования QR-кода гостя.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/checkin - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.CheckinToken == "" {
		h.logger.Warn("POST /bookings/{id}/checkin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tokenBookingID, err := h.verifier.Verify(req.CheckinToken, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, checkintoken.ErrTokenExpired):
			h.logger.Warn("POST /bookings/{id}/checkin - Token expired: booking_id=%d", bookingID)
			h.countResult("token_expired")
			handlers.RespondUnauthorized(w, msgExpiredToken)

		default:
			h.logger.Warn("POST /bookings/{id}/checkin - Invalid token: booking_id=%d, error=%v", bookingID, err)
			h.countResult("token_invalid")
			handlers.RespondUnauthorized(w, msgInvalidToken)
		}
		return
	}

	if tokenBookingID != bookingID {
		h.logger.Warn("POST /bookings/{id}/checkin - Token mismatch: booking_id=%d, token_booking_id=%d",
			bookingID, tokenBookingID)
		h.countResult("token_mismatch")
		handlers.RespondUnauthorized(w, msgTokenMismatch)
		return
	}

	booking, err := h.service.CheckIn(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/checkin - Booking not found: booking_id=%d", bookingID)
			h.countResult("not_found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotCheckInable):
			h.logger.Warn("POST /bookings/{id}/checkin - Not check-inable: booking_id=%d", bookingID)
			h.countResult("wrong_status")
			handlers.RespondError(w, http.StatusConflict, msgNotCheckInable)

		case errors.Is(err, bookings.ErrCheckInTooEarly):
			h.logger.Warn("POST /bookings/{id}/checkin - Too early: booking_id=%d", bookingID)
			h.countResult("too_early")
			handlers.RespondError(w, http.StatusConflict, msgTooEarly)

		case errors.Is(err, bookings.ErrCheckInClosed):
			h.logger.Warn("POST /bookings/{id}/checkin - Window closed: booking_id=%d", bookingID)
			h.countResult("closed")
			handlers.RespondError(w, http.StatusConflict, msgClosed)

		default:
			h.logger.Error("POST /bookings/{id}/checkin - Failed: booking_id=%d, error=%v", bookingID, err)
			h.countResult("error")
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/checkin - Checked in: booking_id=%d", bookingID)
	h.countResult("success")
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}
