package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brf/dto"
	"brf/response"
	"brf/services"
)

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Register tạo tài khoản mới nếu email chưa được dùng.
func (ac *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ac.users.Register(c.Request.Context(), input)
	if err != nil {
		response.Fail(c, http.StatusConflict, err.Error())
		return
	}

	response.Success(c, dto.DataPayload{
		Message: "Your registration successful",
		Data:    user,
	})
}

// Login chấp nhận mọi thông tin đăng nhập ở demo mode và trả về cặp token.
func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := ac.users.FindOrSynthesize(c.Request.Context(), input.Email)

	accessToken, refreshToken, err := services.GenerateTokenPair(user)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithTokens(c, dto.DataPayload{Data: user}, accessToken, refreshToken)
}
