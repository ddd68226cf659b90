package get_available_tables

import (
	"context"

	getAvailableTables "github.com/eatease/EatEase-BookingService/internal/usecase/get_available_tables"
)

type GetAvailableTablesUseCase interface {
	Execute(ctx context.Context, req *getAvailableTables.Request) (*getAvailableTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
