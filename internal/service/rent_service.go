package service

import (
	"context"
	"rentservice/internal/models"
	"rentservice/internal/repository"
)

type RentService interface {
	Create(ctx context.Context, req repository.CreateRentRequest) (*models.Rent, error)
	GetAll(ctx context.Context) ([]models.Rent, error)
	GetByID(ctx context.Context, rentID string) (*models.Rent, error)
	Update(ctx context.Context, rentID string, req repository.UpdateRentRequest) (*models.Rent, error)
	AddImages(ctx context.Context, rentID string, files []FileUpload) (*models.Rent, error)
	RemoveImage(ctx context.Context, rentID, assetID string) (*models.Rent, error)
	Remove(ctx context.Context, rentID string) error
}

type rentService struct {
	rentRepo     repository.RentRepository
	assetService AssetService
}

func NewRentService(rentRepo repository.RentRepository, assetService AssetService) RentService {
	return &rentService{
		rentRepo:     rentRepo,
		assetService: assetService,
	}
}

func (s *rentService) Create(ctx context.Context, req repository.CreateRentRequest) (*models.Rent, error) {
	rent := &models.Rent{
		Street:        req.Street,
		StreetNumber:  req.StreetNumber,
		Coordinates:   req.Coordinates,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		BedroomCount:  req.BedroomCount,
		BathroomCount: req.BathroomCount,
		Parking:       req.Parking,
	}

	if err := s.rentRepo.Create(ctx, rent); err != nil {
		return nil, err
	}

	rent.Assets = []models.Asset{}

	return rent, nil
}

// GetAll возвращает доступные объявления, у каждого только активные ассеты.
// Ассеты подтягиваются отдельным запросом после чтения базовой записи.
func (s *rentService) GetAll(ctx context.Context) ([]models.Rent, error) {
	rents, err := s.rentRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rents {
		assets, err := s.assetService.GetByRentID(ctx, rents[i].RentID)
		if err != nil {
			return nil, err
		}
		rents[i].Assets = assets
	}

	return rents, nil
}

func (s *rentService) GetByID(ctx context.Context, rentID string) (*models.Rent, error) {
	rent, err := s.rentRepo.GetAvailableByID(ctx, rentID)
	if err != nil {
		return nil, err
	}

	assets, err := s.assetService.GetByRentID(ctx, rentID)
	if err != nil {
		return nil, err
	}
	rent.Assets = assets

	return rent, nil
}

func (s *rentService) Update(ctx context.Context, rentID string, req repository.UpdateRentRequest) (*models.Rent, error) {
	rent, err := s.rentRepo.GetAvailableByID(ctx, rentID)
	if err != nil {
		return nil, err
	}

	// apply only the fields present in the request
	if req.Street != nil {
		rent.Street = *req.Street
	}
	if req.StreetNumber != nil {
		rent.StreetNumber = *req.StreetNumber
	}
	if req.Coordinates != nil {
		rent.Coordinates = *req.Coordinates
	}
	if req.Name != nil {
		rent.Name = *req.Name
	}
	if req.Description != nil {
		rent.Description = *req.Description
	}
	if req.Price != nil {
		rent.Price = *req.Price
	}
	if req.BedroomCount != nil {
		rent.BedroomCount = *req.BedroomCount
	}
	if req.BathroomCount != nil {
		rent.BathroomCount = *req.BathroomCount
	}
	if req.Parking != nil {
		rent.Parking = *req.Parking
	}

	if err := s.rentRepo.Update(ctx, rent); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, rentID)
}

// AddImages требует доступное объявление. Загрузка файлов идет параллельно,
// при любой ошибке операция падает целиком; уже загруженные во внешнее
// хранилище объекты при этом не откатываются.
func (s *rentService) AddImages(ctx context.Context, rentID string, files []FileUpload) (*models.Rent, error) {
	if _, err := s.rentRepo.GetAvailableByID(ctx, rentID); err != nil {
		return nil, err
	}

	if _, err := s.assetService.UploadMultiple(ctx, rentID, files); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, rentID)
}

// RemoveImage требует доступное объявление; ассет удаляется строго - и из
// внешнего хранилища, и из БД.
func (s *rentService) RemoveImage(ctx context.Context, rentID, assetID string) (*models.Rent, error) {
	if _, err := s.rentRepo.GetAvailableByID(ctx, rentID); err != nil {
		return nil, err
	}

	if err := s.assetService.HardDelete(ctx, assetID); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, rentID)
}

// Remove - единственный способ удалить объявление: каскадная пометка ассетов,
// затем снятие с публикации. Запись остается в БД навсегда.
func (s *rentService) Remove(ctx context.Context, rentID string) error {
	if _, err := s.rentRepo.GetAvailableByID(ctx, rentID); err != nil {
		return err
	}

	if err := s.assetService.DeleteByRentID(ctx, rentID); err != nil {
		return err
	}

	return s.rentRepo.SetUnavailable(ctx, rentID)
}
