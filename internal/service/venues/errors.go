package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда фудкорт не найден или удалён
	ErrVenueNotFound = errors.New("venues: venue not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец фудкорта
	ErrAccessDenied = errors.New("venues: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("venues: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("venues: internal error")
)
