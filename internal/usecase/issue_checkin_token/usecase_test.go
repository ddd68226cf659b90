package issue_checkin_token

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	bookingRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

type fakeSigner struct{}

func (fakeSigner) Issue(bookingID int64, _ time.Time) (string, error) {
	return fmt.Sprintf("token-%d", bookingID), nil
}

type fakeQRGenerator struct{}

func (fakeQRGenerator) Generate(content string) (string, error) {
	return "data:image/png;base64,QR[" + content + "]", nil
}

var (
	owner    = domain.Actor{ID: 7, Role: domain.RoleCustomer}
	stranger = domain.Actor{ID: 8, Role: domain.RoleCustomer}
	admin    = domain.Actor{ID: 1, Role: domain.RoleAdmin}
)

var (
	bookingStart = time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	bookingEnd   = bookingStart.Add(time.Hour)
)

func seedRepo(status domain.BookingStatus) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID: 1, TableID: 10, CustomerID: owner.ID, GuestCount: 2,
			StartTime: bookingStart, EndTime: bookingEnd, Status: status,
		},
	}}
}

func newTestUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, fakeSigner{}, fakeQRGenerator{}, domain.DefaultBookingPolicy(), nopLogger{})
	return uc.WithTimeProvider(fixedTime{now: now})
}

func TestExecuteIssuesToken(t *testing.T) {
	// 13:51, окно самовывоза открылось в 13:50
	uc := newTestUseCase(seedRepo(domain.StatusBooked), bookingStart.Add(-9*time.Minute))

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1}, owner)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, owner.ID, resp.CustomerID)
	assert.Equal(t, "token-1", resp.CheckinToken)
	assert.Empty(t, resp.QRCode)
}

func TestExecuteIncludesQRWhenRequested(t *testing.T) {
	uc := newTestUseCase(seedRepo(domain.StatusBooked), bookingStart)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, WithQR: true}, owner)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,QR[token-1]", resp.QRCode)
}

func TestExecuteAllowsAdmin(t *testing.T) {
	uc := newTestUseCase(seedRepo(domain.StatusBooked), bookingStart)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1}, admin)
	assert.NoError(t, err)
}

func TestExecuteRejectsStranger(t *testing.T) {
	uc := newTestUseCase(seedRepo(domain.StatusBooked), bookingStart)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1}, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecuteRejectsBeforePickupWindow(t *testing.T) {
	// 13:49, на минуту раньше открытия окна
	uc := newTestUseCase(seedRepo(domain.StatusBooked), bookingStart.Add(-11*time.Minute))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1}, owner)
	assert.ErrorIs(t, err, ErrTooEarly)
}

func TestExecuteRejectsEndedBooking(t *testing.T) {
	uc := newTestUseCase(seedRepo(domain.StatusBooked), bookingEnd.Add(time.Minute))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1}, owner)
	assert.ErrorIs(t, err, ErrBookingEnded)
}

func TestExecuteRejectsInactiveBooking(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCancelled, domain.StatusReleased, domain.StatusNoShow,
	} {
		uc := newTestUseCase(seedRepo(status), bookingStart)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 1}, owner)
		assert.ErrorIs(t, err, ErrNotActive, "status=%s", status)
	}
}

func TestExecuteAllowsCheckedInBooking(t *testing.T) {
	// Гость уже за столом, но может переполучить токен до конца окна
	uc := newTestUseCase(seedRepo(domain.StatusCheckedIn), bookingStart.Add(20*time.Minute))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1}, owner)
	assert.NoError(t, err)
}

func TestExecuteRejectsUnknownBooking(t *testing.T) {
	uc := newTestUseCase(seedRepo(domain.StatusBooked), bookingStart)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 404}, owner)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecuteRejectsInvalidID(t *testing.T) {
	uc := newTestUseCase(seedRepo(domain.StatusBooked), bookingStart)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0}, owner)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
