package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/rockparade/backend/internal/apperr"
	"github.com/rockparade/backend/internal/models"
)

func TestGetUser_NotFound(t *testing.T) {
	userRepo := &mockUserRepo{
		getByLoginFn: func(login string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewUserService(userRepo)

	_, err := svc.GetUser("nobody")

	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "User \"nobody\" was not found.", err.Error())
}

func TestListUsers_ReturnsTotal(t *testing.T) {
	userRepo := &mockUserRepo{
		listFn: func(limit, offset int) ([]models.User, int64, error) {
			return []models.User{{Login: "bander"}, {Login: "derban"}}, 7, nil
		},
	}

	svc := NewUserService(userRepo)

	users, total, err := svc.ListUsers(50, 0)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(7), total)
}
