package get_venue_bookings

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

type BookingService interface {
	GetVenueBookings(ctx context.Context, venueID int64, filter domain.VenueBookingsFilter, actor domain.Actor) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
