package update_table

import (
	"context"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	"github.com/eatease/EatEase-BookingService/internal/service/tables"
)

type TableService interface {
	Update(ctx context.Context, tableID int64, req tables.UpdateTableRequest, actor domain.Actor) (*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
