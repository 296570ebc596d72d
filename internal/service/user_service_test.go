package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"rentservice/internal/models"
)

func TestSeedAdminUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Администратор создается при первом запуске", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, testAuthConfig())

		userRepo.On("GetUserByEmail", ctx, "admin@admin.com").Return(nil, models.ErrNotFound)
		userRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *models.User) bool {
			return user.Email == "admin@admin.com" && user.Role == "admin"
		}), "admin123").Return(nil)

		err := svc.SeedAdminUser(ctx)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Существующий администратор не перезаписывается", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, testAuthConfig())

		userRepo.On("GetUserByEmail", ctx, "admin@admin.com").
			Return(&models.User{UserID: "admin-1", Email: "admin@admin.com"}, nil)

		err := svc.SeedAdminUser(ctx)

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Ошибка БД не маскируется", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo, testAuthConfig())

		dbErr := errors.New("соединение разорвано")
		userRepo.On("GetUserByEmail", ctx, "admin@admin.com").Return(nil, dbErr)

		err := svc.SeedAdminUser(ctx)

		assert.ErrorIs(t, err, dbErr)
	})
}
