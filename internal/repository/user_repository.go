package repository

import (
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByLogin(login string) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	UpdateToken(login, token string) error
	LoginExists(login string) (bool, error)
	NameExists(name string) (bool, error)
	EmailExists(email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "login = ?", login).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(limit, offset int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := r.db.
		Preload("Roles").
		Order("registration_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) UpdateToken(login, token string) error {
	return r.db.Model(&models.User{}).
		Where("login = ?", login).
		Update("token", token).Error
}

func (r *userRepository) LoginExists(login string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
