package handlers

import (
	"github.com/go-playground/validator/v10"
	"rentservice/internal/config"
	"rentservice/internal/service"
)

type Handlers struct {
	UserService  service.UserService
	AuthService  service.AuthService
	RentService  service.RentService
	AssetService service.AssetService
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:  services.User,
		AuthService:  services.Auth,
		RentService:  services.Rent,
		AssetService: services.Asset,
		Cfg:          config,
		Validate:     validator.New(),
	}
}
