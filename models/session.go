package models

// SessionState là trạng thái phiên được lưu trong record store.
type SessionState struct {
	User         *User  `json:"user,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
