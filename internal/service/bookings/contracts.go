package bookings

import (
	"context"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetNextForCustomer(ctx context.Context, customerID int64, now time.Time) (*domain.Booking, error)
	GetByVenueWithFilter(ctx context.Context, venueID int64, filter domain.VenueBookingsFilter, now time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ForceRelease(ctx context.Context, id int64, now time.Time) error
	MarkNoShows(ctx context.Context, now time.Time) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// VenueRepository интерфейс репозитория фудкортов (для проверки владения)
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
