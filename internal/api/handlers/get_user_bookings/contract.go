package get_user_bookings

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, customerID int64, status *string, actor domain.Actor) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
