package get_venue_tables

import (
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

// TableResponse HTTP response model
type TableResponse struct {
	ID       int64  `json:"id"`
	VenueID  int64  `json:"venueId"`
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
	// Occupancy заполняется только при запросе со статусом
	Occupancy string `json:"occupancy,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// TableListResponse HTTP response model со списком столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTables конвертирует список столов в HTTP response
func FromDomainTables(list []*domain.Table) *TableListResponse {
	resp := &TableListResponse{Tables: make([]TableResponse, 0, len(list))}
	for _, t := range list {
		resp.Tables = append(resp.Tables, TableResponse{
			ID:        t.ID,
			VenueID:   t.VenueID,
			Label:     t.Label,
			Capacity:  t.Capacity,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
			UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

// FromDomainTableStatuses конвертирует список столов с занятостью в HTTP response
func FromDomainTableStatuses(list []*domain.TableStatus) *TableListResponse {
	resp := &TableListResponse{Tables: make([]TableResponse, 0, len(list))}
	for _, ts := range list {
		resp.Tables = append(resp.Tables, TableResponse{
			ID:        ts.ID,
			VenueID:   ts.VenueID,
			Label:     ts.Label,
			Capacity:  ts.Capacity,
			Occupancy: string(ts.Occupancy),
			CreatedAt: ts.CreatedAt.Format(time.RFC3339),
			UpdatedAt: ts.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
