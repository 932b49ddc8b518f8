package models

import (
	"time"
)

type Image struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   string    `json:"event_id" gorm:"size:8;not null;uniqueIndex:unique_images_event_name"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:unique_images_event_name"`
	ObjectKey string    `json:"-" gorm:"not null"`
	MimeType  string    `json:"mime_type" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
}

type ImageResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ToImageResponse(i *Image) ImageResponse {
	return ImageResponse{
		ID:   i.ID,
		Name: i.Name,
	}
}
