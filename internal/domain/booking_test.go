package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range ValidStatuses {
		status, ok := ParseBookingStatus(string(valid))
		assert.True(t, ok)
		assert.Equal(t, valid, status)
	}

	_, ok := ParseBookingStatus("confirmed")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("")
	assert.False(t, ok)
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusBooked}).IsActive())
	assert.True(t, (&Booking{Status: StatusCheckedIn}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusReleased}).IsActive())
	assert.False(t, (&Booking{Status: StatusNoShow}).IsActive())
}

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusBooked}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCheckedIn}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusReleased}).CanBeCancelled())
	// Повторная отмена и отмена после no_show допустимы
	assert.True(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusNoShow}).CanBeCancelled())
}

func TestBookingCoversInstant(t *testing.T) {
	start := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)
	b := &Booking{StartTime: start, EndTime: end}

	assert.True(t, b.CoversInstant(start))
	assert.True(t, b.CoversInstant(start.Add(30*time.Minute)))
	assert.False(t, b.CoversInstant(end)) // конец окна не включается
	assert.False(t, b.CoversInstant(start.Add(-time.Second)))
}

func TestTableFits(t *testing.T) {
	table := &Table{Capacity: 4}

	assert.True(t, table.Fits(1))
	assert.True(t, table.Fits(4))
	assert.False(t, table.Fits(5))
}
