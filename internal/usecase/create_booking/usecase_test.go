package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	tableRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/table"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// fakeStore хранит бронирования в памяти; мьютекс имитирует блокировку строки
// стола, которую даёт FOR UPDATE
type fakeStore struct {
	mu       sync.Mutex
	tables   map[int64]*domain.Table
	venues   map[int64]*domain.Venue
	bookings []*domain.Booking
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables: make(map[int64]*domain.Table),
		venues: make(map[int64]*domain.Venue),
		nextID: 1,
	}
}

func (s *fakeStore) GetByIDForUpdate(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := s.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *fakeStore) GetActiveOverlapping(_ context.Context, tableID int64, start, end time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.TableID == tableID && b.IsActive() && domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	cp := *booking
	cp.ID = s.nextID
	s.nextID++
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	s.bookings = append(s.bookings, &cp)
	return &cp, nil
}

// DoSerializable сериализует конкурентные транзакции мьютексом, как это делает
// блокировка строки стола в настоящей БД
func (s *fakeStore) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}

func newTestUseCase(store *fakeStore, now time.Time) *UseCase {
	uc := NewUseCase(store, store, store, store, domain.DefaultBookingPolicy(), nil, nopLogger{})
	return uc.WithTimeProvider(fixedTime{now: now})
}

func seedStore() (*fakeStore, time.Time) {
	store := newFakeStore()
	store.venues[1] = &domain.Venue{ID: 1, Name: "Central Food Hall", AdminID: 100}
	store.tables[10] = &domain.Table{ID: 10, VenueID: 1, Label: "T-10", Capacity: 4}
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return store, now
}

func validRequest() *Request {
	return &Request{
		CustomerID: 7,
		TableID:    10,
		GuestCount: 2,
		StartTime:  time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC),
	}
}

func TestExecuteCreatesBooking(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.TableID)
	assert.Equal(t, int64(1), resp.VenueID)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	require.Len(t, store.bookings, 1)
}

func TestExecuteRejectsOverlap(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Окно, пересекающее существующее на одну минуту
	req := validRequest()
	req.StartTime = time.Date(2026, 6, 1, 14, 59, 0, 0, time.UTC)
	req.EndTime = time.Date(2026, 6, 1, 15, 59, 0, 0, time.UTC)

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, store.bookings, 1)
}

func TestExecuteAllowsBackToBack(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Окно встык: [15:00, 16:00) после [14:00, 15:00)
	req := validRequest()
	req.StartTime = time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)
	req.EndTime = time.Date(2026, 6, 1, 16, 0, 0, 0, time.UTC)

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
	assert.Len(t, store.bookings, 2)
}

func TestExecuteIgnoresInactiveBookings(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	store.bookings = append(store.bookings, &domain.Booking{
		ID: 99, TableID: 10, CustomerID: 8, GuestCount: 2,
		StartTime: time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC),
		Status:    domain.StatusCancelled,
	})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecuteRejectsInsufficientCapacity(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	req := validRequest()
	req.GuestCount = 5 // стол на 4

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
}

func TestExecuteRejectsUnknownTable(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	req := validRequest()
	req.TableID = 404

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecuteRejectsInvalidWindow(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	req := validRequest()
	req.StartTime = time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	req.EndTime = time.Date(2026, 6, 1, 17, 0, 0, 0, time.UTC) // 3 часа

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

// Десять конкурентных запросов на одно окно: ровно один выигрывает
func TestExecuteConcurrentRequestsSingleWinner(t *testing.T) {
	store, now := seedStore()
	uc := newTestUseCase(store, now)

	const attempts = 10

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.CustomerID = int64(100 + i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var created, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		default:
			assert.ErrorIs(t, err, ErrSlotConflict)
			conflicts++
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, store.bookings, 1)
}
