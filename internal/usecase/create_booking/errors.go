package create_booking

import "errors"

var (
	// ErrVenueNotFound возвращается, когда фудкорт не найден или удалён
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("create_booking: table not found")

	// ErrInsufficientCapacity возвращается, когда гостей больше, чем мест за столом
	ErrInsufficientCapacity = errors.New("create_booking: table capacity is insufficient")

	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("create_booking: invalid booking window")

	// ErrSlotConflict возвращается, когда окно пересекается с активным бронированием стола
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrRetryLater возвращается, когда конкурентная нагрузка не позволила завершить транзакцию
	ErrRetryLater = errors.New("create_booking: concurrent conflict, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
