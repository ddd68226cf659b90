package issue_checkin_token

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("issue_checkin_token: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("issue_checkin_token: access denied")

	// ErrTooEarly возвращается, когда окно самовывоза ещё не открылось
	ErrTooEarly = errors.New("issue_checkin_token: pickup window is not open yet")

	// ErrBookingEnded возвращается, когда окно бронирования уже закончилось
	ErrBookingEnded = errors.New("issue_checkin_token: booking window has ended")

	// ErrNotActive возвращается, когда бронирование не в активном статусе
	ErrNotActive = errors.New("issue_checkin_token: booking is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("issue_checkin_token: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("issue_checkin_token: internal error")
)
