// Package pages holds the data-fetching side of the home and rooms pages.
// Rendering lives elsewhere; these functions only decide where the room rows
// come from: the configured backend, or the bundled dataset when there is
// none.
package pages

import (
	"context"

	"brf/apiclient"
	"brf/config"
	"brf/dto"
	"brf/services"
)

type Pages struct {
	cfg    *config.Config
	client apiclient.Client
	rooms  *services.RoomService
}

func New(cfg *config.Config, client apiclient.Client, rooms *services.RoomService) *Pages {
	return &Pages{cfg: cfg, client: client, rooms: rooms}
}

func (p *Pages) fetchRows(ctx context.Context, url string) (dto.RoomRows, error) {
	res, err := p.client.Get(ctx, url, apiclient.NoAuth())
	if err != nil {
		return dto.RoomRows{}, err
	}
	var payload struct {
		Data dto.RoomRows `json:"data"`
	}
	if err := res.Decode(&payload); err != nil {
		return dto.RoomRows{}, err
	}
	return payload.Data, nil
}

// FeaturedRooms trả về các phòng cho trang chủ. Demo mode maps the local
// dataset; otherwise the backend is asked.
func (p *Pages) FeaturedRooms(ctx context.Context) (dto.RoomRows, error) {
	if p.cfg.DemoMode() {
		return dto.RoomRows{Rows: dto.NewRoomRows(p.rooms.Featured()), TotalPage: 1}, nil
	}
	return p.fetchRows(ctx, "/api/v1/get-featured-rooms-list")
}

// AllRooms trả về toàn bộ phòng cho trang danh sách.
func (p *Pages) AllRooms(ctx context.Context) (dto.RoomRows, error) {
	if p.cfg.DemoMode() {
		return dto.RoomRows{Rows: dto.NewRoomRows(p.rooms.All()), TotalPage: 1}, nil
	}
	return p.fetchRows(ctx, "/api/v1/get-rooms-list")
}

// FilterRooms áp bộ lọc của trang danh sách lên dataset cục bộ.
func (p *Pages) FilterRooms(filter dto.RoomFilter) []dto.RoomRow {
	return dto.NewRoomRows(p.rooms.Filter(filter))
}

// SearchRooms tìm phòng gần đúng theo tên trên dataset cục bộ.
func (p *Pages) SearchRooms(query string) []dto.RoomRow {
	return dto.NewRoomRows(p.rooms.Search(query))
}
