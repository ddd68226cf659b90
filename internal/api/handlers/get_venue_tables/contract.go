package get_venue_tables

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

type TableService interface {
	ListByVenue(ctx context.Context, venueID int64) ([]*domain.Table, error)
	ListByVenueWithStatus(ctx context.Context, venueID int64) ([]*domain.TableStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
