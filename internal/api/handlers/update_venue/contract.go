package update_venue

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	"github.com/eatease/EatEase-BookingService/internal/service/venues"
)

type VenueService interface {
	Update(ctx context.Context, id int64, req venues.UpdateVenueRequest, actor domain.Actor) (*domain.Venue, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
