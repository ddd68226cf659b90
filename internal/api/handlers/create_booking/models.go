package create_booking

import (
	"fmt"
	"time"

	createBooking "github.com/eatease/EatEase-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TableID    int64  `json:"tableId"`
	GuestCount int    `json:"guestCount"`
	StartTime  string `json:"startTime"` // RFC 3339
	EndTime    string `json:"endTime"`   // RFC 3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	TableID    int64  `json:"tableId"`
	CustomerID int64  `json:"customerId"`
	GuestCount int    `json:"guestCount"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse startTime: %w", err)
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse endTime: %w", err)
	}

	return &createBooking.Request{
		CustomerID: customerID,
		TableID:    r.TableID,
		GuestCount: r.GuestCount,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		TableID:    resp.TableID,
		CustomerID: resp.CustomerID,
		GuestCount: resp.GuestCount,
		StartTime:  resp.StartTime.Format(time.RFC3339),
		EndTime:    resp.EndTime.Format(time.RFC3339),
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
