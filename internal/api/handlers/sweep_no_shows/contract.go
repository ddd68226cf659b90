package sweep_no_shows

import "context"

type BookingService interface {
	SweepNoShows(ctx context.Context) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
