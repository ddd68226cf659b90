package checkin_booking

import (
	"context"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

type BookingService interface {
	CheckIn(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

// TokenVerifier интерфейс проверки чекин-токена
type TokenVerifier interface {
	Verify(tokenString string, now time.Time) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
