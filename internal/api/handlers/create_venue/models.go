package create_venue

import (
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

// CreateVenueRequest HTTP request model
type CreateVenueRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	City     string `json:"city"`
}

// VenueResponse HTTP response model
type VenueResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	City     string `json:"city"`
	AdminID  int64  `json:"adminId"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainVenue конвертирует domain модель в HTTP response
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	return &VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Location:  v.Location,
		City:      v.City,
		AdminID:   v.AdminID,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
}
