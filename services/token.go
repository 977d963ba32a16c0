package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"brf/config"
	"brf/errors"
	"brf/models"
)

type UserInfo struct {
	UserID string `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// Demo fallbacks keep the server bootable without a .env file; real secrets
// come from SECRET_KEY_ACCESS_TOKEN / SECRET_KEY_REFRESH_TOKEN.
func accessSecret() []byte {
	if v := config.GetEnv("SECRET_KEY_ACCESS_TOKEN"); v != "" {
		return []byte(v)
	}
	return []byte("brf-demo-access-secret")
}

func refreshSecret() []byte {
	if v := config.GetEnv("SECRET_KEY_REFRESH_TOKEN"); v != "" {
		return []byte(v)
	}
	return []byte("brf-demo-refresh-secret")
}

// GenerateToken tạo JWT HS256 chứa thông tin user.
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if isAccessToken {
		return token.SignedString(accessSecret())
	}
	return token.SignedString(refreshSecret())
}

// GenerateTokenPair tạo cặp access/refresh token cho user sau đăng nhập.
func GenerateTokenPair(user models.User) (string, string, error) {
	info := UserInfo{UserID: user.ID, Role: user.Role}

	accessToken, err := GenerateToken(info, 60*24*3, true)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := GenerateToken(info, 60*24*30, false)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// GetUserIDFromToken lấy userID từ token
func GetUserIDFromToken(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	// Giải mã phần payload của token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfo["userid"].(string)
	if !okID || userID == "" {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	return userID, nil
}
