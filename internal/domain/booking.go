package domain

import "time"

// BookingStatus represents the status of a table booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCheckedIn BookingStatus = "checked_in"
	StatusCancelled BookingStatus = "cancelled"
	StatusReleased  BookingStatus = "released"
	StatusNoShow    BookingStatus = "no_show"
)

// ActiveStatuses статусы, которые занимают стол и участвуют в проверке конфликтов
var ActiveStatuses = []BookingStatus{
	StatusBooked,
	StatusCheckedIn,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusBooked,
	StatusCheckedIn,
	StatusCancelled,
	StatusReleased,
	StatusNoShow,
}

// ParseBookingStatus converts a string into a BookingStatus, validating it
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, valid := range ValidStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

// Booking represents a reservation of one table for one time window by one customer.
// Bookings are never hard-deleted; every lifecycle change is a status transition,
// preserving the audit trail.
type Booking struct {
	ID         int64
	TableID    int64
	CustomerID int64
	GuestCount int
	StartTime  time.Time // UTC
	EndTime    time.Time // UTC
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its table (counts toward conflicts)
func (b *Booking) IsActive() bool {
	return b.Status == StatusBooked || b.Status == StatusCheckedIn
}

// CanBeCancelled returns true if the booking may still be cancelled.
// An in-progress visit (checked_in) or a released booking cannot be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status != StatusCheckedIn && b.Status != StatusReleased
}

// IsCheckedIn returns true if the customer has already arrived
func (b *Booking) IsCheckedIn() bool {
	return b.Status == StatusCheckedIn
}

// CoversInstant returns true if t falls inside the booking's [start, end) window
func (b *Booking) CoversInstant(t time.Time) bool {
	return !t.Before(b.StartTime) && t.Before(b.EndTime)
}

// VenueBookingsFilter фильтр для выборки бронирований фудкорта
type VenueBookingsFilter string

const (
	// FilterAll все бронирования фудкорта
	FilterAll VenueBookingsFilter = "all"
	// FilterToday бронирования, начинающиеся сегодня
	FilterToday VenueBookingsFilter = "today"
	// FilterActiveNow активные бронирования, чьё окно покрывает текущий момент
	FilterActiveNow VenueBookingsFilter = "active"
	// FilterInactive отменённые, освобождённые или уже закончившиеся бронирования
	FilterInactive VenueBookingsFilter = "inactive"
)
