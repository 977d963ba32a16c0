package models

// Review là đánh giá phòng. Reviews are keyed under a room id inside
// ReviewMap; the record itself does not repeat the room id.
type Review struct {
	ID      string  `json:"id"`
	Rating  float64 `json:"rating"`
	Message string  `json:"message"`
}

// ReviewMap ánh xạ room id sang danh sách review của phòng đó.
type ReviewMap map[string][]Review
