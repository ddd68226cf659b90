package get_venues

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

type VenueService interface {
	List(ctx context.Context, city, nameQuery *string) ([]*domain.Venue, error)
	ListOwned(ctx context.Context, actor domain.Actor) ([]*domain.Venue, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
