package get_available_tables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeStore struct {
	venues   map[int64]*domain.Venue
	tables   []*domain.Table
	bookings []*domain.Booking
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *fakeStore) GetByVenueID(_ context.Context, venueID int64) ([]*domain.Table, error) {
	var out []*domain.Table
	for _, t := range s.tables {
		if t.VenueID == venueID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeStore) GetOverlappingForTables(_ context.Context, tableIDs []int64, start, end time.Time) ([]*domain.Booking, error) {
	ids := make(map[int64]bool, len(tableIDs))
	for _, id := range tableIDs {
		ids[id] = true
	}

	var out []*domain.Booking
	for _, b := range s.bookings {
		if ids[b.TableID] && b.IsActive() && domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func seedStore() (*fakeStore, time.Time) {
	store := &fakeStore{
		venues: map[int64]*domain.Venue{
			1: {ID: 1, Name: "Central Food Hall", AdminID: 100},
		},
		tables: []*domain.Table{
			{ID: 10, VenueID: 1, Label: "T-10", Capacity: 2},
			{ID: 11, VenueID: 1, Label: "T-11", Capacity: 4},
			{ID: 12, VenueID: 1, Label: "T-12", Capacity: 6},
			{ID: 20, VenueID: 2, Label: "X-1", Capacity: 8},
		},
	}
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return store, now
}

func newTestUseCase(store *fakeStore, now time.Time) *UseCase {
	uc := NewUseCase(store, store, store, domain.DefaultBookingPolicy(), nopLogger{})
	return uc.WithTimeProvider(fixedTime{now: now})
}

func validRequest() *Request {
	return &Request{
		VenueID:    1,
		GuestCount: 3,
		StartTime:  time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC),
	}
}

func tableIDs(resp *Response) []int64 {
	out := make([]int64, 0, len(resp.Tables))
	for _, t := range resp.Tables {
		out = append(out, t.ID)
	}
	return out
}

func TestExecuteFiltersByCapacity(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Стол на двоих не подходит трём гостям, чужой фудкорт не виден
	assert.ElementsMatch(t, []int64{11, 12}, tableIDs(resp))
}

func TestExecuteExcludesBookedTables(t *testing.T) {
	store, now := seedStore()

	store.bookings = append(store.bookings, &domain.Booking{
		ID: 1, TableID: 11, CustomerID: 7, GuestCount: 3,
		StartTime: time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC),
		Status:    domain.StatusBooked,
	})

	uc := newTestUseCase(store, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{12}, tableIDs(resp))
}

func TestExecuteIgnoresBackToBackBookings(t *testing.T) {
	store, now := seedStore()

	// Встык к запрошенному окну [14:00, 15:00)
	store.bookings = append(store.bookings, &domain.Booking{
		ID: 1, TableID: 11, CustomerID: 7, GuestCount: 3,
		StartTime: time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 6, 1, 16, 0, 0, 0, time.UTC),
		Status:    domain.StatusBooked,
	})

	uc := newTestUseCase(store, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{11, 12}, tableIDs(resp))
}

func TestExecuteIgnoresInactiveBookings(t *testing.T) {
	store, now := seedStore()

	store.bookings = append(store.bookings, &domain.Booking{
		ID: 1, TableID: 11, CustomerID: 7, GuestCount: 3,
		StartTime: time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC),
		Status:    domain.StatusCancelled,
	})

	uc := newTestUseCase(store, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{11, 12}, tableIDs(resp))
}

func TestExecuteReturnsEmptyListWhenNothingFits(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	req := validRequest()
	req.GuestCount = 7 // больше любого стола фудкорта 1

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, resp.Tables)
	assert.Empty(t, resp.Tables)
}

func TestExecuteRejectsUnknownVenue(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	req := validRequest()
	req.VenueID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecuteRejectsInvalidWindow(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	req := validRequest()
	req.EndTime = req.StartTime.Add(3 * time.Hour)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestExecuteRejectsInvalidInput(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	req := validRequest()
	req.GuestCount = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
