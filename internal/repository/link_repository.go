package repository

import (
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/models"
)

type LinkRepository interface {
	Create(links []models.Link) error
	GetByID(id uint) (*models.Link, error)
	Delete(link *models.Link) error
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) Create(links []models.Link) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.Create(&links).Error
}

func (r *linkRepository) GetByID(id uint) (*models.Link, error) {
	var link models.Link
	if err := r.db.First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepository) Delete(link *models.Link) error {
	return r.db.Delete(link).Error
}
