package delete_venue

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

type VenueService interface {
	Delete(ctx context.Context, id int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
