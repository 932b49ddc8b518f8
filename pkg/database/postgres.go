package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/models"
)

func NewDatabase(databaseURL string) *gorm.DB {
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// TranslateError maps driver unique-violation errors to gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Event{},
		&models.Image{},
		&models.Link{},
		&models.Band{},
		&models.BandMember{},
	)
	if err != nil {
		return err
	}

	// Seed the base role (if missing)
	var count int64
	db.Model(&models.Role{}).Where("name = ?", models.RoleUser).Count(&count)
	if count == 0 {
		if err := db.Create(&models.Role{Name: models.RoleUser}).Error; err != nil {
			return err
		}
	}

	return nil
}
