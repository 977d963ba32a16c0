package models

// User là hồ sơ người dùng được lưu trong record store.
//
// Password holds the bcrypt hash set at registration. It is persisted with the
// record but stripped from every API payload; demo login never verifies it.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"userName,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Dob      string `json:"dob,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Address  string `json:"address,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role,omitempty"`
}

// WithoutPassword trả về bản sao không chứa password hash.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
