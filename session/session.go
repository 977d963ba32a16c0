// Package session holds the current user and token pair for one client
// context, persisted through a record store so it survives restarts.
package session

import (
	"context"
	"sync"

	"brf/constants"
	"brf/models"
	"brf/store"
)

// Session quản lý trạng thái đăng nhập hiện tại. At most one user is active
// per Session; a second login replaces the first.
type Session struct {
	store store.Store

	mu       sync.Mutex
	onLogout func()
}

func New(st store.Store) *Session {
	return &Session{store: st}
}

// OnLogout đăng ký hook chạy sau khi phiên bị xóa (ví dụ: chuyển hướng về
// trang đăng nhập). The hook runs outside the session lock.
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	s.onLogout = fn
	s.mu.Unlock()
}

func (s *Session) load(ctx context.Context) models.SessionState {
	var state models.SessionState
	s.store.Read(ctx, constants.StorageSessionKey, &state)
	return state
}

// User trả về user của phiên hiện tại, nếu có.
func (s *Session) User(ctx context.Context) (models.User, bool) {
	state := s.load(ctx)
	if state.User == nil {
		return models.User{}, false
	}
	return *state.User, true
}

// AccessToken trả về access token hiện tại, chuỗi rỗng nếu chưa đăng nhập.
func (s *Session) AccessToken(ctx context.Context) string {
	return s.load(ctx).AccessToken
}

// RefreshToken trả về refresh token hiện tại.
func (s *Session) RefreshToken(ctx context.Context) string {
	return s.load(ctx).RefreshToken
}

// SetUser thay user của phiên, giữ nguyên cặp token.
func (s *Session) SetUser(ctx context.Context, user models.User) {
	state := s.load(ctx)
	u := user.WithoutPassword()
	state.User = &u
	s.store.Write(ctx, constants.StorageSessionKey, state)
}

// SetUserAndTokens thiết lập phiên mới sau khi đăng nhập.
func (s *Session) SetUserAndTokens(ctx context.Context, user models.User, accessToken, refreshToken string) {
	u := user.WithoutPassword()
	s.store.Write(ctx, constants.StorageSessionKey, models.SessionState{
		User:         &u,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout xóa toàn bộ dữ liệu phiên rồi gọi hook nếu có.
func (s *Session) Logout(ctx context.Context) {
	s.store.Delete(ctx, constants.StorageSessionKey)
	s.mu.Lock()
	fn := s.onLogout
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
