package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brf/dto"
	"brf/middleware"
	"brf/response"
	"brf/services"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// GetUserBookingOrders trả về các đơn của user hiện tại kèm phân trang
// placeholder (demo luôn một trang).
func (bc *BookingController) GetUserBookingOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	rows := bc.bookings.ListByUser(c.Request.Context(), user.ID)
	response.Success(c, dto.DataPayload{Data: dto.BookingRows{
		Rows:        rows,
		TotalPage:   1,
		CurrentPage: 1,
	}})
}

// PlaceBookingOrder tạo đơn mới cho phòng trong path.
func (bc *BookingController) PlaceBookingOrder(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.PlaceBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bc.bookings.Place(c.Request.Context(), user, c.Param("roomId"), input.BookingDates)
	response.Success(c, dto.DataPayload{
		Message: "Your room booking order placed successful",
		Data:    map[string]interface{}{},
	})
}

// CancelBookingOrder chuyển đơn sang trạng thái cancel.
func (bc *BookingController) CancelBookingOrder(c *gin.Context) {
	booking, err := bc.bookings.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, err.Error())
		return
	}
	response.Success(c, dto.DataPayload{
		Message: "Booking order cancel successful",
		Data:    booking,
	})
}
