package services

import (
	"context"
	"errors"
	"testing"

	"brf/constants"
	apperrors "brf/errors"
	"brf/models"
	"brf/store"
)

func seedReviews(ctx context.Context, st store.Store) {
	st.Write(ctx, constants.StorageReviewsKey, models.ReviewMap{
		"room-1": {
			{ID: "rv-1", Rating: 4, Message: "nice stay"},
			{ID: "rv-2", Rating: 2, Message: "noisy"},
		},
		"room-8": {
			{ID: "rv-3", Rating: 5, Message: "perfect"},
		},
	})
}

func TestListForRoom(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewReviewService(ReviewServiceOptions{Store: st})

	// Empty store: always an empty list, never an error.
	if rows := svc.ListForRoom(ctx, "room-42"); rows == nil || len(rows) != 0 {
		t.Fatalf("rows for empty store: %#v", rows)
	}

	seedReviews(ctx, st)
	if rows := svc.ListForRoom(ctx, "room-1"); len(rows) != 2 {
		t.Fatalf("rows for room-1: %+v", rows)
	}
}

func TestEditReview(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewReviewService(ReviewServiceOptions{Store: st})
	seedReviews(ctx, st)

	updated, err := svc.Edit(ctx, "rv-2", 5, "quiet after all")
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != "rv-2" || updated.Rating != 5 || updated.Message != "quiet after all" {
		t.Fatalf("updated review %+v", updated)
	}

	// Room association and the sibling review are untouched.
	rows := svc.ListForRoom(ctx, "room-1")
	if len(rows) != 2 {
		t.Fatalf("room-1 rows after edit: %+v", rows)
	}
	for _, r := range rows {
		if r.ID == "rv-1" && (r.Rating != 4 || r.Message != "nice stay") {
			t.Fatalf("sibling review changed: %+v", r)
		}
	}

	if _, err := svc.Edit(ctx, "rv-404", 1, "x"); !errors.Is(err, apperrors.ErrReviewNotFound) {
		t.Fatalf("missing review: %v", err)
	}
}
