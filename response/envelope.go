package response

// Envelope là cấu trúc response thành công: result_code 0 và payload dưới
// khóa "result". Login additionally carries the token pair at the top level.
type Envelope struct {
	ResultCode   int         `json:"result_code"`
	Result       interface{} `json:"result"`
	AccessToken  string      `json:"access_token,omitempty"`
	RefreshToken string      `json:"refresh_token,omitempty"`
}

// ErrorDetail chứa thông báo lỗi duy nhất của taxonomy phẳng.
type ErrorDetail struct {
	Message string `json:"message"`
}

// ErrorResult bọc lỗi dưới khóa "error" như backend gốc.
type ErrorResult struct {
	Error ErrorDetail `json:"error"`
}

// ErrorBody là body của các response thất bại. Both the demo server and the
// live client adapter agree on this shape.
type ErrorBody struct {
	ResultCode int         `json:"result_code"`
	Result     ErrorResult `json:"result"`
}

// NewErrorBody tạo body lỗi với message cho trước.
func NewErrorBody(resultCode int, message string) ErrorBody {
	return ErrorBody{
		ResultCode: resultCode,
		Result:     ErrorResult{Error: ErrorDetail{Message: message}},
	}
}
