package builders

import (
	"time"

	"brf/models"
)

// BookingBuilder giúp tạo đơn đặt phòng theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithID gán định danh cho đơn
func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.booking.ID = id
	return b
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID string) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithRoom thêm phòng và bản chụp tên/slug của phòng
func (b *BookingBuilder) WithRoom(roomID string, snapshot models.RoomSnapshot) *BookingBuilder {
	b.booking.RoomID = roomID
	b.booking.Room = snapshot
	return b
}

// WithDates thêm danh sách ngày đặt
func (b *BookingBuilder) WithDates(dates []string) *BookingBuilder {
	if dates == nil {
		dates = []string{}
	}
	b.booking.BookingDates = dates
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.BookingStatus = status
	return b
}

// WithCreatedAt thêm thời điểm tạo
func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.booking.CreatedAt = t
	return b
}

// Build tạo đơn hoàn chỉnh
func (b *BookingBuilder) Build() models.Booking {
	return *b.booking
}
