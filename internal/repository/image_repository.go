package repository

import (
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/models"
)

type ImageRepository interface {
	Create(image *models.Image) error
	GetByID(id uint) (*models.Image, error)
	GetByName(eventID, name string) (*models.Image, error)
	Delete(image *models.Image) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(image *models.Image) error {
	return r.db.Create(image).Error
}

func (r *imageRepository) GetByID(id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) GetByName(eventID, name string) (*models.Image, error) {
	var image models.Image
	err := r.db.First(&image, "event_id = ? AND name = ?", eventID, name).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) Delete(image *models.Image) error {
	return r.db.Delete(image).Error
}
