package models

import (
	"time"
)

// RoleUser is attached to every registered user and is always present in
// serialized role lists.
const RoleUser = "ROLE_USER"

type User struct {
	Login            string    `json:"login" gorm:"primaryKey;size:255"`
	Name             string    `json:"name" gorm:"unique;not null"`
	Email            string    `json:"-" gorm:"unique;not null"`
	Password         string    `json:"-" gorm:"not null"`
	Token            string    `json:"-" gorm:"unique;not null"`
	Description      string    `json:"description" gorm:"type:text"`
	ShortDescription string    `json:"short_description"`
	RegistrationDate time.Time `json:"registration_date"`
	Roles            []Role    `json:"-" gorm:"many2many:users_roles;foreignKey:Login;joinForeignKey:UserLogin;references:Name;joinReferences:RoleName"`
}

// RoleNames returns the user's role names with the base role always included.
func (u *User) RoleNames() []string {
	names := []string{RoleUser}
	for _, role := range u.Roles {
		if role.Name != RoleUser {
			names = append(names, role.Name)
		}
	}
	return names
}

type RegisterRequest struct {
	Login       string `json:"login" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Description string `json:"description"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public view of a user. Credential fields (email,
// password hash, tokens) are never rendered.
type UserResponse struct {
	Login            string   `json:"login"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	RegistrationDate string   `json:"registration_date"`
	Roles            []string `json:"roles"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		Login:            u.Login,
		Name:             u.Name,
		Description:      u.Description,
		RegistrationDate: u.RegistrationDate.Format(DateTimeRenderLayout),
		Roles:            u.RoleNames(),
	}
}

func ToUserResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
