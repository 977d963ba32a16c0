package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"brf/apiclient"
	"brf/config"
	"brf/data"
	"brf/dto"
	"brf/services"
	"brf/services/logger"
	"brf/session"
	"brf/store"
)

func newDemoPages() *Pages {
	cfg := &config.Config{}
	st := store.NewMemoryStore()
	rooms := services.NewRoomService(data.Rooms)
	client := apiclient.New(apiclient.Options{
		Config:  cfg,
		Session: session.New(st),
		Store:   st,
		Rooms:   rooms,
		Logger:  logger.Nop{},
	})
	return New(cfg, client, rooms)
}

func TestDemoModeUsesLocalDataset(t *testing.T) {
	ctx := context.Background()
	p := newDemoPages()

	featured, err := p.FeaturedRooms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(featured.Rows) == 0 || featured.TotalPage != 1 {
		t.Fatalf("featured %+v", featured)
	}
	for _, r := range featured.Rows {
		if r.RoomName == "" || r.RoomSlug == "" || len(r.RoomImages) == 0 {
			t.Fatalf("row missing wire fields: %+v", r)
		}
	}

	all, err := p.AllRooms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all.Rows) != len(data.Rooms) {
		t.Fatalf("all rooms: %d", len(all.Rows))
	}
}

func TestLiveModeAsksBackend(t *testing.T) {
	ctx := context.Background()
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"result_code":0,"result":{"data":{"rows":[{"id":"room-1","room_name":"single economy","room_slug":"single-economy"}],"total_page":1}}}`))
	}))
	defer srv.Close()

	cfg := &config.Config{APIBaseURL: srv.URL}
	st := store.NewMemoryStore()
	sess := session.New(st)
	rooms := services.NewRoomService(data.Rooms)
	client := apiclient.New(apiclient.Options{
		Config:  cfg,
		Session: sess,
		Store:   st,
		Rooms:   rooms,
		Logger:  logger.Nop{},
	})
	p := New(cfg, client, rooms)

	got, err := p.FeaturedRooms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/v1/get-featured-rooms-list" {
		t.Fatalf("path %q", gotPath)
	}
	// Public listing endpoints go out without a bearer token.
	if gotAuth != "" {
		t.Fatalf("Authorization %q", gotAuth)
	}
	if len(got.Rows) != 1 || got.Rows[0].RoomSlug != "single-economy" {
		t.Fatalf("rows %+v", got.Rows)
	}

	if _, err := p.AllRooms(ctx); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/v1/get-rooms-list" {
		t.Fatalf("path %q", gotPath)
	}
}

func TestSearchAndFilterRows(t *testing.T) {
	p := newDemoPages()

	rows := p.SearchRooms("presidential")
	if len(rows) == 0 || rows[0].RoomSlug != "presidential-room" {
		t.Fatalf("search rows %+v", rows)
	}

	for _, r := range p.FilterRooms(dto.RoomFilter{Type: "double"}) {
		if r.RoomType != "double" {
			t.Fatalf("filter leak: %+v", r)
		}
	}
}
