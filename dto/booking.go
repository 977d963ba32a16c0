package dto

import "brf/models"

type PlaceBookingInput struct {
	BookingDates []string `json:"booking_dates"`
}

// BookingRows là payload danh sách đơn đặt phòng kèm phân trang.
// Pagination is a placeholder in demo mode: always one page.
type BookingRows struct {
	Rows        []models.Booking `json:"rows"`
	TotalPage   int              `json:"total_page"`
	CurrentPage int              `json:"current_page"`
}
