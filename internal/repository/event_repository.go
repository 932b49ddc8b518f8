package repository

import (
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/models"
)

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id string) (*models.Event, error)
	List(limit, offset int) ([]models.Event, int64, error)
	FindLike(search string, limit, offset int) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(event *models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id string) (*models.Event, error) {
	var event models.Event
	err := r.db.
		Preload("Images").
		Preload("Links").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(limit, offset int) ([]models.Event, int64, error) {
	var total int64
	if err := r.db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := r.db.
		Preload("Images").
		Preload("Links").
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// FindLike matches events by case-insensitive name substring. The returned
// total reflects the full match set before slicing.
func (r *eventRepository) FindLike(search string, limit, offset int) ([]models.Event, int64, error) {
	query := r.db.Model(&models.Event{}).Where("name ILIKE ?", "%"+search+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := r.db.
		Preload("Images").
		Preload("Links").
		Where("name ILIKE ?", "%"+search+"%").
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(event *models.Event) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.Link{}).Error; err != nil {
			return err
		}
		return tx.Delete(event).Error
	})
}
