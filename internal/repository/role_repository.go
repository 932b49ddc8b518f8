package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/models"
)

type RoleRepository interface {
	GetOrCreate(name string) (*models.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) GetOrCreate(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "name = ?", name).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role = models.Role{Name: name}
	if err := r.db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
