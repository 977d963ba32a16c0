package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brf/dto"
	"brf/response"
	"brf/services"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// GetRoomReviews trả về review của một phòng; phòng chưa có review trả về
// danh sách rỗng, không bao giờ lỗi.
func (rc *ReviewController) GetRoomReviews(c *gin.Context) {
	rows := rc.reviews.ListForRoom(c.Request.Context(), c.Param("roomId"))
	response.Success(c, dto.DataPayload{Data: dto.ReviewRows{
		Rows:      rows,
		TotalPage: 1,
	}})
}

// EditRoomReview ghi đè rating/message của review theo id.
func (rc *ReviewController) EditRoomReview(c *gin.Context) {
	var input dto.EditReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := rc.reviews.Edit(c.Request.Context(), c.Param("reviewId"), input.Rating, input.Message)
	if err != nil {
		response.Fail(c, http.StatusNotFound, err.Error())
		return
	}
	response.Success(c, dto.DataPayload{
		Message: "Your reviews updating successful",
		Data:    review,
	})
}
