package domain

import "time"

// Default booking policy values; actual values come from config.toml
const (
	DefaultMaxBookingDuration = 2 * time.Hour
	DefaultOpenHour           = 8  // 08:00 inclusive
	DefaultCloseHour          = 22 // 22:00 exclusive
	DefaultPickupWindow       = 10 * time.Minute
	DefaultTokenTTL           = time.Hour
)

// Business validation constants
const (
	MinGuestCount    = 1
	MaxGuestCount    = 50
	MinTableCapacity = 1
	MaxTableCapacity = 100
	MaxLabelLength   = 32
	MaxNameLength    = 255
)
