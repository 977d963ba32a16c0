package constants

// Booking status
const (
	BookingStatusInReviews = "in-reviews"
	BookingStatusCancel    = "cancel"
)

// Envelope result codes
const (
	ResultCodeSuccess      = 0
	ResultCodeUnauthorized = 11
)

// User role
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultAvatar is assigned to accounts created in demo mode.
const DefaultAvatar = "/images/jpeg/room-1.jpeg"
