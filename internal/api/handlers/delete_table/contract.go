package delete_table

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

type TableService interface {
	Delete(ctx context.Context, tableID int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
