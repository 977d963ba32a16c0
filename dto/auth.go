package dto

type RegisterInput struct {
	UserName string `json:"userName"`
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Dob      string `json:"dob"`
	Gender   string `json:"gender"`
	Address  string `json:"address"`
}

// LoginInput chấp nhận mọi thông tin đăng nhập ở demo mode; password không
// bao giờ được kiểm tra.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
