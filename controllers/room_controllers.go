package controllers

import (
	"github.com/gin-gonic/gin"

	"brf/dto"
	"brf/response"
	"brf/services"
)

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// GetRoomsList trả về toàn bộ phòng, có lọc theo query string nếu có.
func (rc *RoomController) GetRoomsList(c *gin.Context) {
	var filter dto.RoomFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rows := dto.NewRoomRows(rc.rooms.Filter(filter))
	response.Success(c, dto.DataPayload{Data: dto.RoomRows{
		Rows:      rows,
		TotalPage: 1,
	}})
}

// GetFeaturedRoomsList trả về các phòng hiển thị trên trang chủ.
func (rc *RoomController) GetFeaturedRoomsList(c *gin.Context) {
	rows := dto.NewRoomRows(rc.rooms.Featured())
	response.Success(c, dto.DataPayload{Data: dto.RoomRows{
		Rows:      rows,
		TotalPage: 1,
	}})
}

// SearchRooms tìm phòng gần đúng theo từ khóa.
func (rc *RoomController) SearchRooms(c *gin.Context) {
	rows := dto.NewRoomRows(rc.rooms.Search(c.Query("query")))
	response.Success(c, dto.DataPayload{Data: dto.RoomRows{
		Rows:      rows,
		TotalPage: 1,
	}})
}
