package services

import (
	"testing"

	"brf/data"
	"brf/dto"
)

func TestRoomFind(t *testing.T) {
	svc := NewRoomService(data.Rooms)

	byID, ok := svc.Find("room-1")
	if !ok || byID.Slug != "single-economy" {
		t.Fatalf("find by id: %+v ok=%v", byID, ok)
	}
	bySlug, ok := svc.Find("single-economy")
	if !ok || bySlug.ID != "room-1" {
		t.Fatalf("find by slug: %+v ok=%v", bySlug, ok)
	}
	if _, ok := svc.Find("room-999"); ok {
		t.Fatal("expected miss for room-999")
	}
}

func TestRoomSnapshotUnknown(t *testing.T) {
	svc := NewRoomService(data.Rooms)
	snap := svc.Snapshot("no-such-room")
	if snap.RoomName != "Unknown" || snap.RoomSlug != "unknown" {
		t.Fatalf("snapshot %+v", snap)
	}
}

func TestRoomFeatured(t *testing.T) {
	svc := NewRoomService(data.Rooms)
	featured := svc.Featured()
	if len(featured) == 0 {
		t.Fatal("no featured rooms")
	}
	for _, r := range featured {
		if !r.Featured {
			t.Fatalf("non-featured room in result: %+v", r)
		}
	}
}

func TestRoomSearch(t *testing.T) {
	svc := NewRoomService(data.Rooms)

	tests := []struct {
		query  string
		wantID string
	}{
		{"presidential", "room-13"},
		{"presidental", "room-13"}, // typo tolerated
		{"double deluxe", "room-8"},
		{"Đouble đeluxe", "room-8"}, // diacritics stripped
	}
	for _, tc := range tests {
		rooms := svc.Search(tc.query)
		if len(rooms) == 0 {
			t.Fatalf("search %q: no rooms", tc.query)
		}
		if rooms[0].ID != tc.wantID {
			t.Fatalf("search %q: top hit %+v", tc.query, rooms[0])
		}
	}

	if rooms := svc.Search("   "); len(rooms) != 0 {
		t.Fatalf("blank query: %+v", rooms)
	}
}

func TestRoomFilter(t *testing.T) {
	svc := NewRoomService(data.Rooms)

	if got := svc.Filter(dto.RoomFilter{}); len(got) != len(data.Rooms) {
		t.Fatalf("empty filter keeps everything, got %d", len(got))
	}
	if got := svc.Filter(dto.RoomFilter{Type: "all"}); len(got) != len(data.Rooms) {
		t.Fatalf(`type "all" keeps everything, got %d`, len(got))
	}

	for _, r := range svc.Filter(dto.RoomFilter{Type: "family", Breakfast: true}) {
		if r.Type != "family" || !r.Breakfast {
			t.Fatalf("filter leak: %+v", r)
		}
	}
	for _, r := range svc.Filter(dto.RoomFilter{Capacity: 4, MaxPrice: 450}) {
		if r.Capacity < 4 || r.Price > 450 {
			t.Fatalf("filter leak: %+v", r)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Presidential Room", "presidential-room"},
		{"  Double   Deluxe ", "double-deluxe"},
		{"Phòng Đôi", "phong-doi"},
	}
	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
