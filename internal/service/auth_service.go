package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
	"github.com/rockparade/backend/internal/repository"
	"github.com/rockparade/backend/pkg/bcrypt"
	jwtPkg "github.com/rockparade/backend/pkg/jwt"
	"github.com/rockparade/backend/pkg/utils"
)

// Length of the internal API token stored per user.
const apiTokenLength = 32

type AuthService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	logger   *zap.SugaredLogger
}

func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	logger *zap.SugaredLogger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	if exists, err := s.userRepo.LoginExists(req.Login); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.NewValidation("User with login \"" + req.Login + "\" already exists.")
	}

	if exists, err := s.userRepo.NameExists(req.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.NewValidation("User with name \"" + req.Name + "\" already exists.")
	}

	if exists, err := s.userRepo.EmailExists(req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.NewValidation("User with email \"" + req.Email + "\" already exists.")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	baseRole, err := s.roleRepo.GetOrCreate(models.RoleUser)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Login:            req.Login,
		Name:             req.Name,
		Email:            req.Email,
		Password:         hashedPassword,
		Token:            utils.GenerateRandomString(apiTokenLength),
		Description:      req.Description,
		RegistrationDate: time.Now(),
		Roles:            []models.Role{*baseRole},
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewValidation("User with login \"" + req.Login + "\" already exists.")
		}
		return nil, err
	}

	s.logger.Infow("user registered", "login", user.Login)

	return user, nil
}

func (s *AuthService) Login(req models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByLogin(req.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NewUnauthorized("Invalid login or password.")
		}
		return "", err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return "", apperr.NewUnauthorized("Invalid login or password.")
	}

	return jwtPkg.GenerateToken(user.Login)
}

// RegenerateToken replaces the user's internal API token and returns the
// new value.
func (s *AuthService) RegenerateToken(login string) (string, error) {
	if _, err := s.userRepo.GetByLogin(login); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NewNotFound("User", login)
		}
		return "", err
	}

	token := utils.GenerateRandomString(apiTokenLength)
	if err := s.userRepo.UpdateToken(login, token); err != nil {
		return "", err
	}

	return token, nil
}
