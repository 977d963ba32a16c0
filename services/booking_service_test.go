package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"brf/constants"
	"brf/data"
	apperrors "brf/errors"
	"brf/models"
	"brf/store"
)

func newBookingService() (*BookingService, store.Store) {
	st := store.NewMemoryStore()
	svc := NewBookingService(BookingServiceOptions{
		Store: st,
		Rooms: NewRoomService(data.Rooms),
	})
	return svc, st
}

func TestPlaceBooking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBookingService()
	user := models.User{ID: "demo-user-1"}

	booking := svc.Place(ctx, user, "room-1", []string{"2026-09-10", "2026-09-12"})

	if !strings.HasPrefix(booking.ID, "bk_") {
		t.Fatalf("booking id %q", booking.ID)
	}
	if booking.BookingStatus != constants.BookingStatusInReviews {
		t.Fatalf("status %q", booking.BookingStatus)
	}
	if booking.Room.RoomName != "single economy" || booking.Room.RoomSlug != "single-economy" {
		t.Fatalf("room snapshot %+v", booking.Room)
	}
	if booking.Reviews != nil {
		t.Fatal("new booking carries a review reference")
	}

	rows := svc.ListByUser(ctx, user.ID)
	if len(rows) != 1 {
		t.Fatalf("expected exactly one booking, got %d", len(rows))
	}
}

func TestPlaceBookingUnknownRoomSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBookingService()

	booking := svc.Place(ctx, models.User{ID: "u"}, "no-such-room", nil)
	if booking.Room.RoomName != "Unknown" || booking.Room.RoomSlug != "unknown" {
		t.Fatalf("fallback snapshot %+v", booking.Room)
	}
	if booking.BookingDates == nil || len(booking.BookingDates) != 0 {
		t.Fatalf("nil dates should become an empty list: %#v", booking.BookingDates)
	}
}

func TestListByUserFiltersOwner(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBookingService()

	svc.Place(ctx, models.User{ID: "a"}, "room-1", nil)
	svc.Place(ctx, models.User{ID: "b"}, "room-2", nil)

	if rows := svc.ListByUser(ctx, "a"); len(rows) != 1 || rows[0].UserID != "a" {
		t.Fatalf("rows for a: %+v", rows)
	}
	if rows := svc.ListByUser(ctx, "nobody"); rows == nil || len(rows) != 0 {
		t.Fatalf("rows for unknown user: %#v", rows)
	}
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBookingService()

	booking := svc.Place(ctx, models.User{ID: "u"}, "room-1", nil)

	cancelled, err := svc.Cancel(ctx, booking.ID)
	if err != nil {
		t.Fatal(err)
	}
	if cancelled.BookingStatus != constants.BookingStatusCancel {
		t.Fatalf("status %q", cancelled.BookingStatus)
	}

	// Cancelling again is idempotent in effect: same status, no duplication.
	again, err := svc.Cancel(ctx, booking.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.BookingStatus != constants.BookingStatusCancel {
		t.Fatalf("status after second cancel %q", again.BookingStatus)
	}
	if rows := svc.ListByUser(ctx, "u"); len(rows) != 1 {
		t.Fatalf("cancel duplicated the booking: %d rows", len(rows))
	}

	if _, err := svc.Cancel(ctx, "bk_missing"); !errors.Is(err, apperrors.ErrBookingNotFound) {
		t.Fatalf("missing id: %v", err)
	}
}

func TestPruneCancelled(t *testing.T) {
	ctx := context.Background()
	svc, st := newBookingService()

	old := time.Now().Add(-60 * 24 * time.Hour).UTC()
	st.Write(ctx, constants.StorageBookingsKey, []models.Booking{
		{ID: "bk_old_cancel", BookingStatus: constants.BookingStatusCancel, CreatedAt: old},
		{ID: "bk_old_active", BookingStatus: constants.BookingStatusInReviews, CreatedAt: old},
		{ID: "bk_new_cancel", BookingStatus: constants.BookingStatusCancel, CreatedAt: time.Now().UTC()},
	})

	if removed := svc.PruneCancelled(ctx, 30*24*time.Hour); removed != 1 {
		t.Fatalf("removed %d", removed)
	}

	var left []models.Booking
	st.Read(ctx, constants.StorageBookingsKey, &left)
	if len(left) != 2 {
		t.Fatalf("kept %d bookings", len(left))
	}
	for _, b := range left {
		if b.ID == "bk_old_cancel" {
			t.Fatal("old cancelled booking survived the prune")
		}
	}
}
