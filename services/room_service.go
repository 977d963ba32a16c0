package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"brf/dto"
	"brf/models"
)

// RoomService phục vụ tra cứu, tìm kiếm và lọc trên bộ dataset phòng chỉ đọc.
type RoomService struct {
	rooms     []models.Room
	byKeyword map[string]models.Room
	matcher   *closestmatch.ClosestMatch
}

func NewRoomService(rooms []models.Room) *RoomService {
	byKeyword := make(map[string]models.Room, len(rooms)*2)
	keywords := make([]string, 0, len(rooms)*2)
	for _, r := range rooms {
		for _, kw := range []string{normalizeQuery(r.Name), normalizeQuery(r.Slug)} {
			if _, ok := byKeyword[kw]; !ok {
				byKeyword[kw] = r
				keywords = append(keywords, kw)
			}
		}
	}
	return &RoomService{
		rooms:     rooms,
		byKeyword: byKeyword,
		matcher:   createMatcher(keywords),
	}
}

// Chuẩn hóa chuỗi tìm kiếm: bỏ dấu rồi chuyển về chữ thường.
func normalizeQuery(input string) string {
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func levenshteinDistance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify sinh slug ổn định từ tên phòng.
func Slugify(name string) string {
	s := normalizeQuery(name)
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// All trả về toàn bộ danh sách phòng.
func (s *RoomService) All() []models.Room {
	return s.rooms
}

// Featured trả về các phòng hiển thị trên trang chủ.
func (s *RoomService) Featured() []models.Room {
	featured := []models.Room{}
	for _, r := range s.rooms {
		if r.Featured {
			featured = append(featured, r)
		}
	}
	return featured
}

// Find tra phòng theo id hoặc slug.
func (s *RoomService) Find(idOrSlug string) (models.Room, bool) {
	for _, r := range s.rooms {
		if r.ID == idOrSlug || r.Slug == idOrSlug {
			return r, true
		}
	}
	return models.Room{}, false
}

// Snapshot trả về bản chụp tên/slug của phòng cho đơn đặt; phòng không tồn
// tại nhận bản chụp Unknown/unknown.
func (s *RoomService) Snapshot(idOrSlug string) models.RoomSnapshot {
	if r, ok := s.Find(idOrSlug); ok {
		return r.Snapshot()
	}
	return models.RoomSnapshot{RoomName: "Unknown", RoomSlug: "unknown"}
}

// Search tìm phòng gần đúng theo tên/slug, đã chịu lỗi chính tả.
func (s *RoomService) Search(query string) []models.Room {
	q := normalizeQuery(strings.TrimSpace(query))
	if q == "" {
		return []models.Room{}
	}

	type scored struct {
		room models.Room
		dist int
	}
	var matches []scored
	seen := map[string]bool{}

	add := func(kw string) {
		room, ok := s.byKeyword[kw]
		if !ok || seen[room.ID] {
			return
		}
		seen[room.ID] = true
		matches = append(matches, scored{room: room, dist: levenshteinDistance(q, kw)})
	}

	// Substring hits first, then fuzzy candidates from the n-gram index.
	for kw := range s.byKeyword {
		if strings.Contains(kw, q) {
			add(kw)
		}
	}
	for _, kw := range s.matcher.ClosestN(q, 5) {
		add(kw)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	rooms := []models.Room{}
	for _, m := range matches {
		// Candidates further than half the query length apart are noise.
		if !strings.Contains(normalizeQuery(m.room.Name), q) && m.dist > len(q) {
			continue
		}
		rooms = append(rooms, m.room)
	}
	return rooms
}

// Filter áp tiêu chí của trang danh sách phòng. Zero values bỏ qua tiêu chí.
func (s *RoomService) Filter(f dto.RoomFilter) []models.Room {
	out := []models.Room{}
	for _, r := range s.rooms {
		if f.Type != "" && f.Type != "all" && r.Type != f.Type {
			continue
		}
		if f.Capacity > 0 && r.Capacity < f.Capacity {
			continue
		}
		if f.MinPrice > 0 && r.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && r.Price > f.MaxPrice {
			continue
		}
		if f.MinSize > 0 && r.Size < f.MinSize {
			continue
		}
		if f.MaxSize > 0 && r.Size > f.MaxSize {
			continue
		}
		if f.Pets && !r.Pets {
			continue
		}
		if f.Breakfast && !r.Breakfast {
			continue
		}
		out = append(out, r)
	}
	return out
}
