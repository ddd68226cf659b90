package get_available_tables

import "errors"

var (
	// ErrVenueNotFound возвращается, когда фудкорт не найден или удалён
	ErrVenueNotFound = errors.New("get_available_tables: venue not found")

	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("get_available_tables: invalid booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_tables: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_tables: internal error")
)
