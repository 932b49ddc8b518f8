package models

import (
	"time"
)

const (
	// EventDateLayout is the wire format of event dates (dd-MM-yyyy HH:mm).
	EventDateLayout = "02-01-2006 15:04"
	// DateTimeRenderLayout is used when rendering dates in responses.
	DateTimeRenderLayout = "2006-01-02 15:04:05"
)

type Event struct {
	ID           string    `json:"id" gorm:"primaryKey;size:8"`
	Name         string    `json:"name" gorm:"size:255;not null;uniqueIndex:unique_events_date_name"`
	Date         time.Time `json:"date" gorm:"not null;uniqueIndex:unique_events_date_name"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Place        string    `json:"place" gorm:"not null"`
	CreatorLogin string    `json:"creator" gorm:"not null;index"`
	Creator      *User     `json:"-" gorm:"foreignKey:CreatorLogin;references:Login"`
	Images       []Image   `json:"images" gorm:"foreignKey:EventID"`
	Links        []Link    `json:"links" gorm:"foreignKey:EventID"`
	CreatedAt    time.Time `json:"-"`
}

type EventRequest struct {
	Name        string        `json:"name" validate:"required"`
	Date        string        `json:"date" validate:"required,eventdate"`
	Description string        `json:"description" validate:"required"`
	Place       string        `json:"place" validate:"required"`
	Links       []LinkRequest `json:"links" validate:"omitempty,dive"`
}

type EventResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Place       string          `json:"place"`
	Creator     string          `json:"creator"`
	Images      []ImageResponse `json:"images"`
	Links       []LinkResponse  `json:"links"`
}

func ToEventResponse(e *Event) EventResponse {
	images := make([]ImageResponse, 0, len(e.Images))
	for i := range e.Images {
		images = append(images, ToImageResponse(&e.Images[i]))
	}

	links := make([]LinkResponse, 0, len(e.Links))
	for i := range e.Links {
		links = append(links, ToLinkResponse(&e.Links[i]))
	}

	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date.Format(DateTimeRenderLayout),
		Description: e.Description,
		Place:       e.Place,
		Creator:     e.CreatorLogin,
		Images:      images,
		Links:       links,
	}
}

func ToEventResponses(events []Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, ToEventResponse(&events[i]))
	}
	return responses
}
