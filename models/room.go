package models

// Room là dữ liệu tham chiếu chỉ đọc từ bộ dataset cục bộ.
// The dataset is never mutated by the API layer.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Type        string   `json:"type"`
	Price       int      `json:"price"`
	Size        int      `json:"size"`
	Capacity    int      `json:"capacity"`
	Pets        bool     `json:"pets"`
	Breakfast   bool     `json:"breakfast"`
	Featured    bool     `json:"featured"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Snapshot trả về bản chụp tên/slug dùng cho đơn đặt phòng.
func (r Room) Snapshot() RoomSnapshot {
	return RoomSnapshot{RoomName: r.Name, RoomSlug: r.Slug}
}
