package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
	"github.com/rockparade/backend/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func (s *UserService) GetUser(login string) (*models.User, error) {
	user, err := s.userRepo.GetByLogin(login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("User", login)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(limit, offset int) ([]models.User, int64, error) {
	return s.userRepo.List(limit, offset)
}
