package dto

import "brf/models"

// RoomImage bọc URL ảnh theo dạng wire mà frontend dùng.
type RoomImage struct {
	URL string `json:"url"`
}

// RoomRow là dạng wire của một phòng trên trang chủ và trang danh sách.
type RoomRow struct {
	ID               string      `json:"id"`
	RoomName         string      `json:"room_name"`
	RoomSlug         string      `json:"room_slug"`
	RoomType         string      `json:"room_type"`
	RoomPrice        int         `json:"room_price"`
	RoomSize         int         `json:"room_size"`
	RoomCapacity     int         `json:"room_capacity"`
	AllowPets        bool        `json:"allow_pets"`
	ProvideBreakfast bool        `json:"provide_breakfast"`
	RoomDescription  string      `json:"room_description"`
	RoomImages       []RoomImage `json:"room_images"`
}

// NewRoomRow chuyển một bản ghi dataset sang dạng wire.
func NewRoomRow(r models.Room) RoomRow {
	images := make([]RoomImage, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, RoomImage{URL: img})
	}
	return RoomRow{
		ID:               r.ID,
		RoomName:         r.Name,
		RoomSlug:         r.Slug,
		RoomType:         r.Type,
		RoomPrice:        r.Price,
		RoomSize:         r.Size,
		RoomCapacity:     r.Capacity,
		AllowPets:        r.Pets,
		ProvideBreakfast: r.Breakfast,
		RoomDescription:  r.Description,
		RoomImages:       images,
	}
}

// NewRoomRows chuyển cả danh sách phòng.
func NewRoomRows(rooms []models.Room) []RoomRow {
	rows := make([]RoomRow, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, NewRoomRow(r))
	}
	return rows
}

// RoomRows là payload danh sách phòng.
type RoomRows struct {
	Rows      []RoomRow `json:"rows"`
	TotalPage int       `json:"total_page"`
}

// RoomFilter là tiêu chí lọc của trang danh sách phòng. Zero values mean
// "no constraint" for that field.
type RoomFilter struct {
	Type      string `json:"type" form:"type"`
	Capacity  int    `json:"capacity" form:"capacity"`
	MinPrice  int    `json:"min_price" form:"min_price"`
	MaxPrice  int    `json:"max_price" form:"max_price"`
	MinSize   int    `json:"min_size" form:"min_size"`
	MaxSize   int    `json:"max_size" form:"max_size"`
	Pets      bool   `json:"pets" form:"pets"`
	Breakfast bool   `json:"breakfast" form:"breakfast"`
}
