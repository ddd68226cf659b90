package models

import (
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	TableID    int64  `json:"tableId"`
	CustomerID int64  `json:"customerId"`
	GuestCount int    `json:"guestCount"`
	StartTime  string `json:"startTime"` // RFC 3339, UTC
	EndTime    string `json:"endTime"`   // RFC 3339, UTC
	Status     string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		TableID:    b.TableID,
		CustomerID: b.CustomerID,
		GuestCount: b.GuestCount,
		StartTime:  b.StartTime.UTC().Format(time.RFC3339),
		EndTime:    b.EndTime.UTC().Format(time.RFC3339),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}

	return resp
}
