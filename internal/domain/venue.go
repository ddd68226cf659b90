package domain

import "time"

// Venue represents a food-court location owned by an admin.
// Venues are soft-deleted: DeletedAt is set and the row is retained; deletion
// logically removes the venue's tables from every query as well.
type Venue struct {
	ID       int64
	Name     string
	Location string
	City     string
	AdminID  int64 // owning admin

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted returns true if the venue has been soft-deleted
func (v *Venue) IsDeleted() bool {
	return v.DeletedAt != nil
}

// IsOwnedBy returns true if userID is the owning admin of the venue
func (v *Venue) IsOwnedBy(userID int64) bool {
	return v.AdminID == userID
}
