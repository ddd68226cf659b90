package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrVenueNotFound возвращается, когда фудкорт не найден или удалён
	ErrVenueNotFound = errors.New("bookings: venue not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на бронирование
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrNotCancellable возвращается при попытке отменить начавшийся визит
	// или уже освобождённое бронирование
	ErrNotCancellable = errors.New("bookings: booking cannot be cancelled")

	// ErrNotActive возвращается, когда переход требует активного бронирования
	ErrNotActive = errors.New("bookings: booking is not active")

	// ErrNotCheckInable возвращается при чек-ине бронирования в терминальном статусе
	ErrNotCheckInable = errors.New("bookings: booking cannot be checked in")

	// ErrCheckInTooEarly возвращается, когда чек-ин раньше окна прибытия
	ErrCheckInTooEarly = errors.New("bookings: check-in window not open yet")

	// ErrCheckInClosed возвращается, когда окно бронирования уже закончилось
	ErrCheckInClosed = errors.New("bookings: booking window has ended")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
