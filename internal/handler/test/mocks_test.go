package test

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"rentservice/internal/models"
	"rentservice/internal/repository"
	"rentservice/internal/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SeedAdminUser(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) UserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRentService struct {
	mock.Mock
}

func (m *MockRentService) Create(ctx context.Context, req repository.CreateRentRequest) (*models.Rent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rent), args.Error(1)
}

func (m *MockRentService) GetAll(ctx context.Context) ([]models.Rent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rent), args.Error(1)
}

func (m *MockRentService) GetByID(ctx context.Context, rentID string) (*models.Rent, error) {
	args := m.Called(ctx, rentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rent), args.Error(1)
}

func (m *MockRentService) Update(ctx context.Context, rentID string, req repository.UpdateRentRequest) (*models.Rent, error) {
	args := m.Called(ctx, rentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rent), args.Error(1)
}

func (m *MockRentService) AddImages(ctx context.Context, rentID string, files []service.FileUpload) (*models.Rent, error) {
	args := m.Called(ctx, rentID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rent), args.Error(1)
}

func (m *MockRentService) RemoveImage(ctx context.Context, rentID, assetID string) (*models.Rent, error) {
	args := m.Called(ctx, rentID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rent), args.Error(1)
}

func (m *MockRentService) Remove(ctx context.Context, rentID string) error {
	args := m.Called(ctx, rentID)
	return args.Error(0)
}

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) UploadFile(ctx context.Context, rentID string, file service.FileUpload) (*models.Asset, error) {
	args := m.Called(ctx, rentID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetService) UploadMultiple(ctx context.Context, rentID string, files []service.FileUpload) ([]models.Asset, error) {
	args := m.Called(ctx, rentID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetService) GetByRentID(ctx context.Context, rentID string) ([]models.Asset, error) {
	args := m.Called(ctx, rentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetService) SoftDelete(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockAssetService) HardDelete(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockAssetService) DeleteByRentID(ctx context.Context, rentID string) error {
	args := m.Called(ctx, rentID)
	return args.Error(0)
}
