package get_available_tables

import (
	"context"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOverlappingForTables(ctx context.Context, tableIDs []int64, start, end time.Time) ([]*domain.Booking, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByVenueID(ctx context.Context, venueID int64) ([]*domain.Table, error)
}

// VenueRepository интерфейс репозитория фудкортов
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
