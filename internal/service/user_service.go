package service

import (
	"context"
	"errors"
	"log"
	"rentservice/internal/config"
	"rentservice/internal/models"
	"rentservice/internal/repository"
)

const (
	adminEmail    = "admin@admin.com"
	adminPassword = "admin123"
	adminName     = "Администратор"
)

type UserService interface {
	SeedAdminUser(ctx context.Context) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// SeedAdminUser создает администратора при первом запуске. Шаг идемпотентный:
// существующий администратор никогда не перезаписывается.
func (s *userService) SeedAdminUser(ctx context.Context) error {
	_, err := s.userRepo.GetUserByEmail(ctx, adminEmail)
	if err == nil {
		log.Println("Пользователь admin уже существует")
		return nil
	}

	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	user := &models.User{
		Email: adminEmail,
		Name:  adminName,
		Role:  "admin",
	}

	if err := s.userRepo.CreateUser(ctx, user, adminPassword); err != nil {
		return err
	}

	log.Printf("Пользователь admin создан: %s", adminEmail)
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
