package constants

// Storage keys for the demo record store. The review store is a mapping from
// room id to a review list; the other two hold flat arrays.
const (
	StorageReviewsKey  = "BRF-ROOM-REVIEWS"
	StorageBookingsKey = "BRF-BOOKINGS"
	StorageUsersKey    = "BRF-USERS"
	StorageSessionKey  = "BRF-SESSION"
)
