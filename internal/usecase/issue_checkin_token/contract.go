package issue_checkin_token

import (
	"context"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// TokenSigner интерфейс подписи чекин-токенов
type TokenSigner interface {
	Issue(bookingID int64, now time.Time) (string, error)
}

// QRGenerator интерфейс генерации QR-кода по содержимому токена
type QRGenerator interface {
	Generate(content string) (string, error)
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
