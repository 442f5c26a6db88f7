package service

import (
	"habit_tracker_backend/internal/model"
	"habit_tracker_backend/internal/repository"
	"habit_tracker_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// UserService 处理用户相关的业务逻辑
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

// GetUserByID 根据ID获取用户信息
func (s *UserService) GetUserByID(id string) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

// ChangePassword 校验旧密码后更新为新密码
func (s *UserService) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	return s.UserRepo.Update(user)
}
