package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"rentservice/internal/config"
	"rentservice/internal/models"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:  "test-secret-key",
		JWTExpiration: time.Hour,
	}
}

func testUser() *models.User {
	return &models.User{
		UserID: "user-1",
		Email:  "user@example.com",
		Name:   "Иван",
		Role:   "admin",
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешный вход возвращает токен", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, testAuthConfig())

		user := testUser()
		userRepo.On("VerifyPassword", ctx, user.Email, "password123").Return(user, nil)

		got, token, err := svc.Login(ctx, user.Email, "password123")

		assert.NoError(t, err)
		assert.Equal(t, user.UserID, got.UserID)
		assert.NotEmpty(t, token)
		userRepo.AssertExpectations(t)
	})

	t.Run("Неизвестный email и неверный пароль дают одинаковую ошибку", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, testAuthConfig())

		userRepo.On("VerifyPassword", ctx, "ghost@example.com", "whatever").
			Return(nil, models.ErrNotFound)
		userRepo.On("VerifyPassword", ctx, "user@example.com", "wrong").
			Return(nil, models.ErrInvalidCredentials)

		_, _, errUnknown := svc.Login(ctx, "ghost@example.com", "whatever")
		_, _, errWrong := svc.Login(ctx, "user@example.com", "wrong")

		assert.ErrorIs(t, errUnknown, models.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, models.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

func TestUserFromToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Токен разрешается в пользователя", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, testAuthConfig())

		user := testUser()
		userRepo.On("VerifyPassword", ctx, user.Email, "password123").Return(user, nil)
		userRepo.On("GetUserByID", ctx, user.UserID).Return(user, nil)

		_, token, err := svc.Login(ctx, user.Email, "password123")
		assert.NoError(t, err)

		got, err := svc.UserFromToken(ctx, token)

		assert.NoError(t, err)
		assert.Equal(t, user.UserID, got.UserID)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("Просроченный токен отклоняется", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		cfg := testAuthConfig()
		cfg.JWTExpiration = -time.Hour
		svc := NewAuthService(userRepo, cfg)

		user := testUser()
		userRepo.On("VerifyPassword", ctx, user.Email, "password123").Return(user, nil)

		_, token, err := svc.Login(ctx, user.Email, "password123")
		assert.NoError(t, err)

		_, err = svc.UserFromToken(ctx, token)

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})

	t.Run("Токен с другой подписью отклоняется", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, testAuthConfig())

		otherCfg := testAuthConfig()
		otherCfg.JWTSecretKey = "another-secret"
		other := NewAuthService(userRepo, otherCfg)

		user := testUser()
		userRepo.On("VerifyPassword", ctx, user.Email, "password123").Return(user, nil)

		_, token, err := other.Login(ctx, user.Email, "password123")
		assert.NoError(t, err)

		_, err = svc.UserFromToken(ctx, token)

		assert.Error(t, err)
	})

	t.Run("Токен удаленного пользователя недействителен", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, testAuthConfig())

		user := testUser()
		userRepo.On("VerifyPassword", ctx, user.Email, "password123").Return(user, nil)
		userRepo.On("GetUserByID", ctx, user.UserID).Return(nil, models.ErrNotFound)

		_, token, err := svc.Login(ctx, user.Email, "password123")
		assert.NoError(t, err)

		_, err = svc.UserFromToken(ctx, token)

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Мусорная строка не является токеном", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, testAuthConfig())

		_, err := svc.UserFromToken(ctx, "not-a-token")

		assert.Error(t, err)
	})
}
