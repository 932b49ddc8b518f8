package models

import (
	"time"
)

type Link struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EventID     string    `json:"event_id" gorm:"size:8;not null;uniqueIndex:unique_links_event_url"`
	URL         string    `json:"url" gorm:"not null;uniqueIndex:unique_links_event_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
}

type LinkRequest struct {
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description"`
}

type LinksRequest struct {
	Links []LinkRequest `json:"links" validate:"required,dive"`
}

type LinkResponse struct {
	ID          uint   `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func ToLinkResponse(l *Link) LinkResponse {
	return LinkResponse{
		ID:          l.ID,
		URL:         l.URL,
		Description: l.Description,
	}
}
