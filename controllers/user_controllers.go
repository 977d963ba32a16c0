package controllers

import (
	"github.com/gin-gonic/gin"

	"brf/dto"
	"brf/middleware"
	"brf/response"
	"brf/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetUser trả về hồ sơ của user đang đăng nhập.
func (uc *UserController) GetUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.Success(c, dto.DataPayload{Data: user})
}

// UpdateUser gộp các field trong body vào hồ sơ hiện tại.
func (uc *UserController) UpdateUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	patch := map[string]interface{}{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated := uc.users.Update(c.Request.Context(), user, patch)
	response.Success(c, dto.DataPayload{
		Message: "Your profile information updated successful",
		Data:    updated,
	})
}
