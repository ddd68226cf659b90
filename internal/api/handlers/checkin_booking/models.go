package checkin_booking

// CheckInRequest HTTP request model
type CheckInRequest struct {
	CheckinToken string `json:"checkinToken"`
}
