package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow возвращается, когда запрошенное окно бронирования нарушает политику
var ErrInvalidWindow = errors.New("domain: invalid booking window")

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching intervals (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// BookingPolicy limits applied to every requested booking window.
// Values are configuration, not constants; defaults mirror constants.go.
type BookingPolicy struct {
	MaxDuration  time.Duration // maximum booking length
	OpenHour     int           // operating hours start, inclusive (UTC)
	CloseHour    int           // operating hours end, exclusive beyond this hour (UTC)
	PickupWindow time.Duration // how early before start a check-in token may be issued
	TokenTTL     time.Duration // fixed check-in token lifetime
}

// DefaultBookingPolicy returns the policy with the stock limits
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		MaxDuration:  DefaultMaxBookingDuration,
		OpenHour:     DefaultOpenHour,
		CloseHour:    DefaultCloseHour,
		PickupWindow: DefaultPickupWindow,
		TokenTTL:     DefaultTokenTTL,
	}
}

// ValidateWindow checks a requested [start, end) window against the policy.
// All comparisons are done in UTC. Violations are reported as wrapped
// ErrInvalidWindow values.
func (p BookingPolicy) ValidateWindow(start, end, now time.Time) error {
	start, end, now = start.UTC(), end.UTC(), now.UTC()

	if !start.Before(end) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidWindow)
	}
	if start.Before(now) {
		return fmt.Errorf("%w: start must not be in the past", ErrInvalidWindow)
	}
	if end.Sub(start) > p.MaxDuration {
		return fmt.Errorf("%w: duration exceeds %s", ErrInvalidWindow, p.MaxDuration)
	}

	open := time.Date(start.Year(), start.Month(), start.Day(), p.OpenHour, 0, 0, 0, time.UTC)
	close := time.Date(start.Year(), start.Month(), start.Day(), p.CloseHour, 0, 0, 0, time.UTC)
	if start.Before(open) || end.After(close) {
		return fmt.Errorf("%w: window outside operating hours %02d:00-%02d:00",
			ErrInvalidWindow, p.OpenHour, p.CloseHour)
	}

	return nil
}

// PickupOpensAt returns the instant from which a check-in token may be issued
// for a booking starting at start.
func (p BookingPolicy) PickupOpensAt(start time.Time) time.Time {
	return start.Add(-p.PickupWindow)
}
