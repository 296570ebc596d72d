package repository

import (
	"context"
	"github.com/jmoiron/sqlx"
	"rentservice/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type RentRepository interface {
	Create(ctx context.Context, rent *models.Rent) error
	GetAvailableByID(ctx context.Context, rentID string) (*models.Rent, error)
	GetAllAvailable(ctx context.Context) ([]models.Rent, error)
	Update(ctx context.Context, rent *models.Rent) error
	SetUnavailable(ctx context.Context, rentID string) error
}

type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, assetID string) (*models.Asset, error)
	GetActiveByRentID(ctx context.Context, rentID string) ([]models.Asset, error)
	MarkDeleted(ctx context.Context, assetID string) error
	Delete(ctx context.Context, assetID string) error
	MarkDeletedByRentID(ctx context.Context, rentID string) error
}

type Repository struct {
	User  UserRepository
	Rent  RentRepository
	Asset AssetRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Rent:  NewRentRepository(db),
		Asset: NewAssetRepository(db),
	}
}
