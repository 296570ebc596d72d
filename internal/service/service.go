package service

import (
	"rentservice/internal/config"
	"rentservice/internal/repository"
	"rentservice/internal/storage"
)

type Service struct {
	User  UserService
	Auth  AuthService
	Rent  RentService
	Asset AssetService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	assetService := NewAssetService(rep.Asset, storage)

	return &Service{
		User:  NewUserService(rep.User, cfg),
		Auth:  NewAuthService(rep.User, cfg),
		Rent:  NewRentService(rep.Rent, assetService),
		Asset: assetService,
	}
}
