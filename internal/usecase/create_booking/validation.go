package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.GuestCount < domain.MinGuestCount || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must be between %d and %d",
			ErrInvalidInput, domain.MinGuestCount, domain.MaxGuestCount)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	return nil
}

// validateWindow проверяет окно бронирования по политике заведения
func validateWindow(policy domain.BookingPolicy, start, end, now time.Time) error {
	if err := policy.ValidateWindow(start, end, now); err != nil {
		if errors.Is(err, domain.ErrInvalidWindow) {
			return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}
