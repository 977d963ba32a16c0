package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeUserExists   ErrorCode = "USER_EXISTS"
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	// Record errors
	ErrCodeBookingNotFound ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeReviewNotFound  ErrorCode = "REVIEW_NOT_FOUND"
	ErrCodeRoomNotFound    ErrorCode = "ROOM_NOT_FOUND"

	// Transport errors
	ErrCodeEndpointUnavailable ErrorCode = "ENDPOINT_UNAVAILABLE"
	ErrCodeBadPayload          ErrorCode = "BAD_PAYLOAD"

	// Storage errors
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// Sentinel errors carry the exact messages of the response envelope contract,
// so translating them at the transport edge is a plain err.Error() call.
var (
	ErrNotAuthenticated    = errors.New("Not authenticated")
	ErrUserAlreadyExists   = errors.New("User already exists")
	ErrBookingNotFound     = errors.New("Booking not found")
	ErrReviewNotFound      = errors.New("Review not found")
	ErrRoomNotFound        = errors.New("Room not found")
	ErrEndpointUnavailable = errors.New("Endpoint not available in demo mode")
)
