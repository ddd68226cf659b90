package create_booking

import (
	"errors"
	"net/http"

	"github.com/eatease/EatEase-BookingService/internal/api/handlers"
	"github.com/eatease/EatEase-BookingService/internal/api/middleware"
	createBooking "github.com/eatease/EatEase-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUser        = "отсутствует идентичность пользователя"
	msgTableNotFound      = "стол не найден"
	msgVenueNotFound      = "фудкорт не найден"
	msgCapacity           = "вместимость стола недостаточна"
	msgSlotConflict       = "выбранное окно пересекается с другим бронированием"
	msgRetryLater         = "высокая конкуренция за стол, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor.ID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: table_id=%d, customer_id=%d", req.TableID, actor.ID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrRetryLater):
			h.logger.Warn("POST /bookings - Retry limit exceeded: table_id=%d", req.TableID)
			handlers.RespondServiceUnavailable(w, msgRetryLater)

		case errors.Is(err, createBooking.ErrTableNotFound):
			h.logger.Warn("POST /bookings - Table not found: table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found for table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrInsufficientCapacity):
			h.logger.Warn("POST /bookings - Insufficient capacity: table_id=%d, guests=%d", req.TableID, req.GuestCount)
			handlers.RespondError(w, http.StatusConflict, msgCapacity)

		case errors.Is(err, createBooking.ErrInvalidWindow),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d",
		result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
