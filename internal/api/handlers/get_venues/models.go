package get_venues

import (
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

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

// VenueListResponse HTTP response model со списком фудкортов
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// FromDomainVenues конвертирует список domain моделей в HTTP response
func FromDomainVenues(list []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{Venues: make([]VenueResponse, 0, len(list))}
	for _, v := range list {
		resp.Venues = append(resp.Venues, VenueResponse{
			ID:        v.ID,
			Name:      v.Name,
			Location:  v.Location,
			City:      v.City,
			AdminID:   v.AdminID,
			CreatedAt: v.CreatedAt.Format(time.RFC3339),
			UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
