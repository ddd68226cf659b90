package domain

import "time"

// Table represents a bookable physical unit within a venue.
// Occupancy is always derived from bookings, never stored on the table itself.
type Table struct {
	ID       int64
	VenueID  int64
	Label    string // human label, e.g. "A1"
	Capacity int    // seating capacity, positive

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fits returns true if the table can seat the given number of guests
func (t *Table) Fits(guestCount int) bool {
	return t.Capacity >= guestCount
}

// TableOccupancy derived table state at a given instant
type TableOccupancy string

const (
	TableAvailable TableOccupancy = "available"
	TableOccupied  TableOccupancy = "occupied"
)

// TableStatus a table together with its derived occupancy
type TableStatus struct {
	Table
	Occupancy TableOccupancy
}
