package get_stats

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings"
)

type BookingService interface {
	GetStats(ctx context.Context, actor domain.Actor) (*bookings.Stats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
