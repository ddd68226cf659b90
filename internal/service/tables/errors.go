package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("tables: table not found")

	// ErrVenueNotFound возвращается, когда фудкорт стола не найден или удалён
	ErrVenueNotFound = errors.New("tables: venue not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец фудкорта
	ErrAccessDenied = errors.New("tables: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("tables: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tables: internal error")
)
