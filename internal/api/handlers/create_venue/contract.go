package create_venue

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	"github.com/eatease/EatEase-BookingService/internal/service/venues"
)

type VenueService interface {
	Create(ctx context.Context, req venues.CreateVenueRequest, actor domain.Actor) (*domain.Venue, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
