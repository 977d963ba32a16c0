package services

import (
	"context"
	"fmt"
	"time"

	"brf/builders"
	"brf/constants"
	"brf/errors"
	"brf/models"
	"brf/services/logger"
	"brf/store"
)

type BookingServiceOptions struct {
	Store  store.Store
	Rooms  *RoomService
	Logger logger.Logger
}

// BookingService quản lý đơn đặt phòng trong record store.
type BookingService struct {
	store  store.Store
	rooms  *RoomService
	logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &BookingService{store: opts.Store, rooms: opts.Rooms, logger: log}
}

func (s *BookingService) loadBookings(ctx context.Context) []models.Booking {
	var bookings []models.Booking
	s.store.Read(ctx, constants.StorageBookingsKey, &bookings)
	return bookings
}

func (s *BookingService) saveBookings(ctx context.Context, bookings []models.Booking) {
	s.store.Write(ctx, constants.StorageBookingsKey, bookings)
}

// ListByUser trả về các đơn của một user. Always a non-nil slice.
func (s *BookingService) ListByUser(ctx context.Context, userID string) []models.Booking {
	rows := []models.Booking{}
	for _, b := range s.loadBookings(ctx) {
		if b.UserID == userID {
			rows = append(rows, b)
		}
	}
	return rows
}

// Place tạo đơn mới với trạng thái in-reviews, kèm bản chụp tên/slug phòng.
// Referential integrity is not checked: an unknown room id still books, with
// the Unknown/unknown snapshot.
func (s *BookingService) Place(ctx context.Context, user models.User, roomID string, dates []string) models.Booking {
	booking := builders.NewBookingBuilder().
		WithID(fmt.Sprintf("bk_%d", time.Now().UnixMilli())).
		WithUser(user.ID).
		WithRoom(roomID, s.rooms.Snapshot(roomID)).
		WithDates(dates).
		WithStatus(constants.BookingStatusInReviews).
		WithCreatedAt(time.Now().UTC()).
		Build()

	bookings := append(s.loadBookings(ctx), booking)
	s.saveBookings(ctx, bookings)
	s.logger.Info("placed booking %s for user %s", booking.ID, user.ID)

	return booking
}

// Cancel chuyển trạng thái đơn sang cancel. Idempotent: cancelling twice
// leaves the status at cancel.
func (s *BookingService) Cancel(ctx context.Context, id string) (models.Booking, error) {
	bookings := s.loadBookings(ctx)
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].BookingStatus = constants.BookingStatusCancel
			s.saveBookings(ctx, bookings)
			return bookings[i], nil
		}
	}
	return models.Booking{}, errors.ErrBookingNotFound
}

// PruneCancelled xóa các đơn đã hủy cũ hơn khoảng thời gian cho trước và trả
// về số đơn đã xóa. Dùng cho job dọn dữ liệu demo.
func (s *BookingService) PruneCancelled(ctx context.Context, olderThan time.Duration) int {
	bookings := s.loadBookings(ctx)
	cutoff := time.Now().Add(-olderThan)

	kept := bookings[:0]
	removed := 0
	for _, b := range bookings {
		if b.BookingStatus == constants.BookingStatusCancel && b.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	if removed > 0 {
		s.saveBookings(ctx, kept)
		s.logger.Info("pruned %d cancelled bookings", removed)
	}
	return removed
}
