package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brf/constants"
)

// Success trả về response thành công
func Success(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, Envelope{
		ResultCode: constants.ResultCodeSuccess,
		Result:     result,
	})
}

// SuccessWithTokens trả về response đăng nhập kèm cặp token.
func SuccessWithTokens(c *gin.Context, result interface{}, accessToken, refreshToken string) {
	c.JSON(http.StatusOK, Envelope{
		ResultCode:   constants.ResultCodeSuccess,
		Result:       result,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Fail trả về response lỗi với message theo taxonomy phẳng.
func Fail(c *gin.Context, status int, message string) {
	resultCode := 1
	if status == http.StatusUnauthorized {
		resultCode = constants.ResultCodeUnauthorized
	}
	c.JSON(status, NewErrorBody(resultCode, message))
}

// Unauthorized trả về response chưa xác thực. The result code doubles as the
// session-invalidating signal for the live client adapter.
func Unauthorized(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, "Not authenticated")
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}
