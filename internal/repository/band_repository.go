package repository

import (
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/models"
)

type BandRepository interface {
	Create(band *models.Band) error
	GetByName(name string) (*models.Band, error)
	List(limit, offset int) ([]models.Band, int64, error)
	Update(band *models.Band) error
	Rename(oldName, newName string) error
	Delete(band *models.Band) error
	ReplaceMembers(bandName string, members []models.BandMember) error
	AddMember(member *models.BandMember) error
	UpdateMember(member *models.BandMember) error
	RemoveMember(bandName, login string) error
}

type bandRepository struct {
	db *gorm.DB
}

func NewBandRepository(db *gorm.DB) BandRepository {
	return &bandRepository{db: db}
}

func (r *bandRepository) Create(band *models.Band) error {
	return r.db.Create(band).Error
}

func (r *bandRepository) GetByName(name string) (*models.Band, error) {
	var band models.Band
	err := r.db.
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&band, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &band, nil
}

func (r *bandRepository) List(limit, offset int) ([]models.Band, int64, error) {
	var total int64
	if err := r.db.Model(&models.Band{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bands []models.Band
	err := r.db.
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("registration_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&bands).Error
	if err != nil {
		return nil, 0, err
	}

	return bands, total, nil
}

func (r *bandRepository) Update(band *models.Band) error {
	return r.db.Model(&models.Band{}).
		Where("name = ?", band.Name).
		Updates(map[string]interface{}{
			"description":   band.Description,
			"creator_login": band.CreatorLogin,
		}).Error
}

// Rename moves a band to a new primary name, carrying its member rows along.
func (r *bandRepository) Rename(oldName, newName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Band{}).
			Where("name = ?", oldName).
			Update("name", newName).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.BandMember{}).
			Where("band_name = ?", oldName).
			Update("band_name", newName).Error
	})
}

func (r *bandRepository) Delete(band *models.Band) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("band_name = ?", band.Name).Delete(&models.BandMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(band).Error
	})
}

func (r *bandRepository) ReplaceMembers(bandName string, members []models.BandMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("band_name = ?", bandName).Delete(&models.BandMember{}).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}
		return tx.Create(&members).Error
	})
}

func (r *bandRepository) AddMember(member *models.BandMember) error {
	return r.db.Create(member).Error
}

func (r *bandRepository) UpdateMember(member *models.BandMember) error {
	return r.db.Model(&models.BandMember{}).
		Where("band_name = ? AND user_login = ?", member.BandName, member.UserLogin).
		Updates(map[string]interface{}{
			"short_description": member.ShortDescription,
			"description":       member.Description,
		}).Error
}

func (r *bandRepository) RemoveMember(bandName, login string) error {
	return r.db.
		Where("band_name = ? AND user_login = ?", bandName, login).
		Delete(&models.BandMember{}).Error
}
