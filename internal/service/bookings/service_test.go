package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	bookingRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/booking"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
	"github.com/eatease/EatEase-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopTxManager struct{}

func (nopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeBookingRepo хранит бронирования в памяти
type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		cp := *b
		r.bookings[b.ID] = &cp
	}
	return r
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetNextForCustomer(_ context.Context, customerID int64, now time.Time) (*domain.Booking, error) {
	var next *domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID || !b.IsActive() || !b.StartTime.After(now) {
			continue
		}
		if next == nil || b.StartTime.Before(next.StartTime) {
			next = b
		}
	}
	if next == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *next
	return &cp, nil
}

func (r *fakeBookingRepo) GetByVenueWithFilter(_ context.Context, _ int64, _ domain.VenueBookingsFilter, _ time.Time) ([]*domain.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) ForceRelease(_ context.Context, id int64, now time.Time) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusReleased
	b.EndTime = now
	return nil
}

func (r *fakeBookingRepo) MarkNoShows(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.Status == domain.StatusBooked && b.EndTime.Before(now) {
			b.Status = domain.StatusNoShow
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) CountStartingBetween(_ context.Context, from, to time.Time) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.IsActive() && !b.StartTime.Before(from) && b.StartTime.Before(to) {
			count++
		}
	}
	return count, nil
}

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
}

func (r *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	cp := *v
	return &cp, nil
}

var (
	customer = domain.Actor{ID: 7, Role: domain.RoleCustomer}
	stranger = domain.Actor{ID: 8, Role: domain.RoleCustomer}
	admin    = domain.Actor{ID: 1, Role: domain.RoleAdmin}
)

func newTestService(repo *fakeBookingRepo, now time.Time) *Service {
	venues := &fakeVenueRepo{venues: map[int64]*domain.Venue{
		1: {ID: 1, Name: "Central Food Hall", AdminID: 1},
	}}
	svc := NewService(repo, venues, nopTxManager{}, domain.DefaultBookingPolicy(), nopLogger{})
	return svc.WithTimeProvider(fixedTime{now: now})
}

func bookedAt(id int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID: id, TableID: 10, CustomerID: customer.ID, GuestCount: 2,
		StartTime: start, EndTime: end, Status: domain.StatusBooked,
	}
}

func TestGetByIDAccess(t *testing.T) {
	start := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(bookedAt(1, start, start.Add(time.Hour)))
	svc := newTestService(repo, start)

	_, err := svc.GetByID(context.Background(), 1, customer)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, admin)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 404, customer)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckIn(t *testing.T) {
	start := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("succeeds inside pickup window", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		// 13:51, окно самовывоза открылось в 13:50
		svc := newTestService(repo, start.Add(-9*time.Minute))

		b, err := svc.CheckIn(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCheckedIn, b.Status)
	})

	t.Run("rejects before pickup window", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		// 13:49, на минуту раньше
		svc := newTestService(repo, start.Add(-11*time.Minute))

		_, err := svc.CheckIn(context.Background(), 1)
		assert.ErrorIs(t, err, ErrCheckInTooEarly)
		assert.Equal(t, domain.StatusBooked, repo.bookings[1].Status)
	})

	t.Run("rejects after booking end", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		svc := newTestService(repo, end.Add(time.Minute))

		_, err := svc.CheckIn(context.Background(), 1)
		assert.ErrorIs(t, err, ErrCheckInClosed)
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		svc := newTestService(repo, start)

		_, err := svc.CheckIn(context.Background(), 1)
		require.NoError(t, err)

		b, err := svc.CheckIn(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCheckedIn, b.Status)
	})

	t.Run("rejects terminal statuses", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{
			domain.StatusCancelled, domain.StatusReleased, domain.StatusNoShow,
		} {
			b := bookedAt(1, start, end)
			b.Status = status
			repo := newFakeBookingRepo(b)
			svc := newTestService(repo, start)

			_, err := svc.CheckIn(context.Background(), 1)
			assert.ErrorIs(t, err, ErrNotCheckInable, "status=%s", status)
		}
	})
}

func TestCancel(t *testing.T) {
	start := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("owner cancels booked", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		svc := newTestService(repo, start)

		b, err := svc.Cancel(context.Background(), 1, customer)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, b.Status)
	})

	t.Run("admin cancels someone else's booking", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		svc := newTestService(repo, start)

		_, err := svc.Cancel(context.Background(), 1, admin)
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		svc := newTestService(repo, start)

		_, err := svc.Cancel(context.Background(), 1, stranger)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("checked_in cannot be cancelled", func(t *testing.T) {
		b := bookedAt(1, start, end)
		b.Status = domain.StatusCheckedIn
		repo := newFakeBookingRepo(b)
		svc := newTestService(repo, start)

		_, err := svc.Cancel(context.Background(), 1, customer)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("released cannot be cancelled", func(t *testing.T) {
		b := bookedAt(1, start, end)
		b.Status = domain.StatusReleased
		repo := newFakeBookingRepo(b)
		svc := newTestService(repo, start)

		_, err := svc.Cancel(context.Background(), 1, customer)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})
}

func TestRelease(t *testing.T) {
	start := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("admin releases booked", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		svc := newTestService(repo, start)

		b, err := svc.Release(context.Background(), 1, admin)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusReleased, b.Status)
	})

	t.Run("customer is rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		svc := newTestService(repo, start)

		_, err := svc.Release(context.Background(), 1, customer)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("checked_in cannot be released", func(t *testing.T) {
		b := bookedAt(1, start, end)
		b.Status = domain.StatusCheckedIn
		repo := newFakeBookingRepo(b)
		svc := newTestService(repo, start)

		_, err := svc.Release(context.Background(), 1, admin)
		assert.ErrorIs(t, err, ErrNotActive)
	})
}

func TestForceRelease(t *testing.T) {
	start := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	now := start.Add(20 * time.Minute)

	t.Run("truncates end_time to now", func(t *testing.T) {
		b := bookedAt(1, start, end)
		b.Status = domain.StatusCheckedIn
		repo := newFakeBookingRepo(b)
		svc := newTestService(repo, now)

		released, err := svc.ForceRelease(context.Background(), 1, admin)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusReleased, released.Status)
		assert.Equal(t, now, released.EndTime)
		assert.Equal(t, now, repo.bookings[1].EndTime)
	})

	t.Run("inactive booking is rejected", func(t *testing.T) {
		b := bookedAt(1, start, end)
		b.Status = domain.StatusCancelled
		repo := newFakeBookingRepo(b)
		svc := newTestService(repo, now)

		_, err := svc.ForceRelease(context.Background(), 1, admin)
		assert.ErrorIs(t, err, ErrNotActive)
	})

	t.Run("customer is rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(bookedAt(1, start, end))
		svc := newTestService(repo, now)

		_, err := svc.ForceRelease(context.Background(), 1, customer)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestSweepNoShows(t *testing.T) {
	now := time.Date(2026, 6, 1, 16, 0, 0, 0, time.UTC)

	expiredBooked := bookedAt(1, now.Add(-2*time.Hour), now.Add(-time.Hour))
	expiredCheckedIn := bookedAt(2, now.Add(-2*time.Hour), now.Add(-time.Hour))
	expiredCheckedIn.Status = domain.StatusCheckedIn
	upcoming := bookedAt(3, now.Add(time.Hour), now.Add(2*time.Hour))

	repo := newFakeBookingRepo(expiredBooked, expiredCheckedIn, upcoming)
	svc := newTestService(repo, now)

	swept, err := svc.SweepNoShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)

	assert.Equal(t, domain.StatusNoShow, repo.bookings[1].Status)
	// Гость уже за столом, свипер его не трогает
	assert.Equal(t, domain.StatusCheckedIn, repo.bookings[2].Status)
	assert.Equal(t, domain.StatusBooked, repo.bookings[3].Status)
}

func TestGetNextBooking(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	later := bookedAt(1, now.Add(5*time.Hour), now.Add(6*time.Hour))
	sooner := bookedAt(2, now.Add(2*time.Hour), now.Add(3*time.Hour))
	past := bookedAt(3, now.Add(-2*time.Hour), now.Add(-time.Hour))

	repo := newFakeBookingRepo(later, sooner, past)
	svc := newTestService(repo, now)

	b, err := svc.GetNextBooking(context.Background(), customer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.ID)

	_, err = svc.GetNextBooking(context.Background(), stranger)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetStats(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	today := bookedAt(1, now.Add(2*time.Hour), now.Add(3*time.Hour))
	tomorrow := bookedAt(2, now.Add(26*time.Hour), now.Add(27*time.Hour))
	cancelled := bookedAt(3, now.Add(4*time.Hour), now.Add(5*time.Hour))
	cancelled.Status = domain.StatusCancelled

	repo := newFakeBookingRepo(today, tomorrow, cancelled)
	svc := newTestService(repo, now)

	stats, err := svc.GetStats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ActiveBookings)
	assert.Equal(t, int64(1), stats.TodayReservations)

	_, err = svc.GetStats(context.Background(), customer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookingsInvalidStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, time.Now().UTC())

	_, err := svc.GetUserBookings(context.Background(), customer.ID, ptr.Ptr("confirmed"), customer)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetUserBookings(context.Background(), customer.ID, nil, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
