package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"brf/constants"
	"brf/dto"
	"brf/errors"
	"brf/models"
	"brf/services/logger"
	"brf/store"
)

type UserServiceOptions struct {
	Store  store.Store
	Logger logger.Logger
}

// UserService quản lý danh sách user trong record store.
type UserService struct {
	store  store.Store
	logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &UserService{store: opts.Store, logger: log}
}

func (s *UserService) loadUsers(ctx context.Context) []models.User {
	var users []models.User
	s.store.Read(ctx, constants.StorageUsersKey, &users)
	return users
}

func (s *UserService) saveUsers(ctx context.Context, users []models.User) {
	s.store.Write(ctx, constants.StorageUsersKey, users)
}

// FindByEmail tìm user theo email, so khớp chuỗi chính xác.
func (s *UserService) FindByEmail(ctx context.Context, email string) (models.User, bool) {
	for _, u := range s.loadUsers(ctx) {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// FindByID tìm user theo id.
func (s *UserService) FindByID(ctx context.Context, id string) (models.User, bool) {
	for _, u := range s.loadUsers(ctx) {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// HashPassword băm mật khẩu bằng bcrypt.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// Register tạo user mới nếu email chưa tồn tại. Only the bcrypt hash of the
// password is stored; the returned record carries no password field.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (models.User, error) {
	users := s.loadUsers(ctx)
	for _, u := range users {
		if u.Email == input.Email {
			return models.User{}, errors.ErrUserAlreadyExists
		}
	}

	user := models.User{
		ID:       fmt.Sprintf("demo-user-%d", len(users)+1),
		UserName: input.UserName,
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Dob:      input.Dob,
		Gender:   input.Gender,
		Address:  input.Address,
		Avatar:   constants.DefaultAvatar,
		Role:     constants.RoleUser,
	}

	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hash
	}

	users = append(users, user)
	s.saveUsers(ctx, users)
	s.logger.Info("registered user %s", user.ID)

	return user.WithoutPassword(), nil
}

// FindOrSynthesize trả về user theo email, hoặc dựng một user tạm (không lưu)
// để login ở demo mode không bao giờ thất bại.
func (s *UserService) FindOrSynthesize(ctx context.Context, email string) models.User {
	if email == "" {
		email = "demo@example.com"
	}
	if u, ok := s.FindByEmail(ctx, email); ok {
		return u.WithoutPassword()
	}
	return models.User{
		ID:       "demo-user-1",
		Email:    email,
		FullName: strings.SplitN(email, "@", 2)[0],
		Avatar:   constants.DefaultAvatar,
		Role:     constants.RoleUser,
	}
}

// ApplyPatch gộp các field từ patch vào user hiện tại theo kiểu merge JSON.
// The id never changes and the password hash cannot be overwritten this way;
// keys the User struct does not know are dropped.
func ApplyPatch(current models.User, patch map[string]interface{}) models.User {
	raw, err := json.Marshal(current)
	if err != nil {
		return current
	}
	merged := map[string]interface{}{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return current
	}
	for k, v := range patch {
		if k == "id" || k == "password" {
			continue
		}
		merged[k] = v
	}
	raw, err = json.Marshal(merged)
	if err != nil {
		return current
	}
	updated := current
	if err := json.Unmarshal(raw, &updated); err != nil {
		return current
	}
	updated.ID = current.ID
	return updated
}

// Update gộp patch vào user và ghi lại bản ghi lưu trữ nếu có.
func (s *UserService) Update(ctx context.Context, current models.User, patch map[string]interface{}) models.User {
	updated := ApplyPatch(current, patch)

	users := s.loadUsers(ctx)
	for i, u := range users {
		if u.ID == updated.ID {
			stored := updated
			stored.Password = u.Password
			users[i] = stored
			s.saveUsers(ctx, users)
			break
		}
	}

	return updated.WithoutPassword()
}
