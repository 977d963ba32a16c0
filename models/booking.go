package models

import "time"

// RoomSnapshot giữ lại tên và slug của phòng tại thời điểm đặt.
type RoomSnapshot struct {
	RoomName string `json:"room_name"`
	RoomSlug string `json:"room_slug"`
}

// Booking là một đơn đặt phòng trong record store.
type Booking struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	RoomID        string       `json:"roomId"`
	Room          RoomSnapshot `json:"room"`
	BookingDates  []string     `json:"booking_dates"`
	BookingStatus string       `json:"booking_status"`
	Reviews       *string      `json:"reviews"`
	CreatedAt     time.Time    `json:"created_at"`
}
