package models

import (
	"time"
)

type Band struct {
	Name             string       `json:"name" gorm:"primaryKey;size:255"`
	Description      string       `json:"description" gorm:"type:text"`
	RegistrationDate time.Time    `json:"registration_date"`
	CreatorLogin     string       `json:"creator" gorm:"not null;index"`
	Creator          *User        `json:"-" gorm:"foreignKey:CreatorLogin;references:Login"`
	Members          []BandMember `json:"members" gorm:"foreignKey:BandName;references:Name"`
}

// BandMember is an explicit join row between a band and a user, carrying
// per-membership descriptions. Position keeps member ordering stable, with
// the band creator always at position 0.
type BandMember struct {
	BandName         string `json:"-" gorm:"primaryKey;size:255"`
	UserLogin        string `json:"login" gorm:"primaryKey;size:255"`
	User             *User  `json:"-" gorm:"foreignKey:UserLogin;references:Login"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	Position         int    `json:"-" gorm:"not null"`
}

type BandRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Members     []BandMemberRequest `json:"members" validate:"omitempty,dive"`
}

type BandMemberRequest struct {
	Login            string `json:"login" validate:"required"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
}

// MemberRequest mutates a single band membership. The ambassador field names
// the band the member belongs to.
type MemberRequest struct {
	Ambassador       string `json:"ambassador" validate:"required"`
	Login            string `json:"login" validate:"required"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
}

type BandResponse struct {
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	RegistrationDate string               `json:"registration_date"`
	Creator          string               `json:"creator"`
	Members          []BandMemberResponse `json:"members"`
}

// BandMemberResponse renders a member as a nested summary, not a full user.
type BandMemberResponse struct {
	Login            string `json:"login"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
}

func ToBandResponse(b *Band) BandResponse {
	members := make([]BandMemberResponse, 0, len(b.Members))
	for i := range b.Members {
		members = append(members, BandMemberResponse{
			Login:            b.Members[i].UserLogin,
			ShortDescription: b.Members[i].ShortDescription,
			Description:      b.Members[i].Description,
		})
	}

	return BandResponse{
		Name:             b.Name,
		Description:      b.Description,
		RegistrationDate: b.RegistrationDate.Format(DateTimeRenderLayout),
		Creator:          b.CreatorLogin,
		Members:          members,
	}
}

func ToBandResponses(bands []Band) []BandResponse {
	responses := make([]BandResponse, 0, len(bands))
	for i := range bands {
		responses = append(responses, ToBandResponse(&bands[i]))
	}
	return responses
}
