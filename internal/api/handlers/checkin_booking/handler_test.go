package checkin_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	"github.com/eatease/EatEase-BookingService/internal/service/bookings"
	"github.com/eatease/EatEase-BookingService/pkg/checkintoken"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingService struct {
	checkInErr error
	checkedIn  []int64
}

func (s *fakeBookingService) CheckIn(_ context.Context, bookingID int64) (*domain.Booking, error) {
	if s.checkInErr != nil {
		return nil, s.checkInErr
	}
	s.checkedIn = append(s.checkedIn, bookingID)
	now := time.Now().UTC()
	return &domain.Booking{
		ID: bookingID, TableID: 10, CustomerID: 7, GuestCount: 2,
		StartTime: now, EndTime: now.Add(time.Hour),
		Status: domain.StatusCheckedIn,
	}, nil
}

var testSigner = checkintoken.NewSigner([]byte("test-secret"), time.Hour)

func newTestServer(service *fakeBookingService) *mux.Router {
	h := NewHandler(service, testSigner, nil, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/checkin", h.Handle).Methods(http.MethodPost)
	return router
}

func doCheckIn(t *testing.T, router *mux.Router, bookingID string, token string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(CheckInRequest{CheckinToken: token})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/bookings/%s/checkin", bookingID), bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func issueToken(t *testing.T, bookingID int64) string {
	t.Helper()
	token, err := testSigner.Issue(bookingID, time.Now().UTC())
	require.NoError(t, err)
	return token
}

func TestHandleChecksIn(t *testing.T) {
	service := &fakeBookingService{}
	router := newTestServer(service)

	rec := doCheckIn(t, router, "42", issueToken(t, 42))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{42}, service.checkedIn)

	var resp struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusCheckedIn), resp.Status)
}

func TestHandleRejectsTokenForAnotherBooking(t *testing.T) {
	service := &fakeBookingService{}
	router := newTestServer(service)

	rec := doCheckIn(t, router, "42", issueToken(t, 99))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, service.checkedIn)
}

func TestHandleRejectsGarbageToken(t *testing.T) {
	router := newTestServer(&fakeBookingService{})

	rec := doCheckIn(t, router, "42", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleRejectsMissingToken(t *testing.T) {
	router := newTestServer(&fakeBookingService{})

	rec := doCheckIn(t, router, "42", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRejectsBadBookingID(t *testing.T) {
	router := newTestServer(&fakeBookingService{})

	rec := doCheckIn(t, router, "abc", issueToken(t, 42))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMapsServiceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"terminal status", bookings.ErrNotCheckInable, http.StatusConflict},
		{"too early", bookings.ErrCheckInTooEarly, http.StatusConflict},
		{"window closed", bookings.ErrCheckInClosed, http.StatusConflict},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestServer(&fakeBookingService{checkInErr: tc.err})

			rec := doCheckIn(t, router, "42", issueToken(t, 42))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
