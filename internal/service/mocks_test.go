package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"rentservice/internal/models"
	"rentservice/internal/storage"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRentRepository struct {
	mock.Mock
}

func (m *MockRentRepository) Create(ctx context.Context, rent *models.Rent) error {
	args := m.Called(ctx, rent)
	return args.Error(0)
}

func (m *MockRentRepository) GetAvailableByID(ctx context.Context, rentID string) (*models.Rent, error) {
	args := m.Called(ctx, rentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rent), args.Error(1)
}

func (m *MockRentRepository) GetAllAvailable(ctx context.Context) ([]models.Rent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rent), args.Error(1)
}

func (m *MockRentRepository) Update(ctx context.Context, rent *models.Rent) error {
	args := m.Called(ctx, rent)
	return args.Error(0)
}

func (m *MockRentRepository) SetUnavailable(ctx context.Context, rentID string) error {
	args := m.Called(ctx, rentID)
	return args.Error(0)
}

type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) GetByID(ctx context.Context, assetID string) (*models.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetRepository) GetActiveByRentID(ctx context.Context, rentID string) ([]models.Asset, error) {
	args := m.Called(ctx, rentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetRepository) MarkDeleted(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockAssetRepository) MarkDeletedByRentID(ctx context.Context, rentID string) error {
	args := m.Called(ctx, rentID)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, rentID, fileName, contentType string, file io.Reader, size int64) (*storage.UploadResult, error) {
	args := m.Called(ctx, rentID, fileName, contentType, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *MockStorage) DeleteImage(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockStorage) BulkDelete(ctx context.Context, fileIDs []string) storage.BulkDeleteResult {
	args := m.Called(ctx, fileIDs)
	return args.Get(0).(storage.BulkDeleteResult)
}

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) UploadFile(ctx context.Context, rentID string, file FileUpload) (*models.Asset, error) {
	args := m.Called(ctx, rentID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetService) UploadMultiple(ctx context.Context, rentID string, files []FileUpload) ([]models.Asset, error) {
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
